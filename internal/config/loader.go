package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const keyfallFile = "keyfall.yaml"

// Sources reported by ResolveKeyfall besides file paths.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadKeyfall loads the Keyfall configuration.
// Search order: customPath -> ~/.keyfall/configs/keyfall.yaml -> ./configs/keyfall.yaml -> embedded default
func LoadKeyfall(customPath string) (KeyfallConfig, error) {
	cfg, _, err := ResolveKeyfall(customPath)
	return cfg, err
}

// ResolveKeyfall is LoadKeyfall that also reports where the config came
// from: a file path, SourceEmbedded or SourceBuiltin.
// Files only need to set the keys they change; the rest keep their defaults.
// A broken custom file is an error; broken files on the search path are
// skipped.
func ResolveKeyfall(customPath string) (KeyfallConfig, string, error) {
	if customPath != "" {
		cfg, err := readKeyfall(customPath)
		if err != nil {
			return DefaultKeyfallConfig(), "", err
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(keyfallFile),
		filepath.Join("configs", keyfallFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readKeyfall(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parseKeyfall(defaultKeyfallYAML)
	if err != nil {
		return DefaultKeyfallConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// readKeyfall reads, parses and validates one config file.
func readKeyfall(path string) (KeyfallConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyfallConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parseKeyfall(data)
	if err != nil {
		return KeyfallConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parseKeyfall overlays YAML onto the defaults and validates the result.
func parseKeyfall(data []byte) (KeyfallConfig, error) {
	cfg := DefaultKeyfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KeyfallConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return KeyfallConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".keyfall", "configs", filename)
}
