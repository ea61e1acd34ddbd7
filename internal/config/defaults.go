package config

import (
	_ "embed"

	"github.com/vovakirdan/keyfall/internal/core"
)

//go:embed defaults/keyfall.yaml
var defaultKeyfallYAML []byte

// DefaultKeyfallConfig returns the default Keyfall configuration.
func DefaultKeyfallConfig() KeyfallConfig {
	return KeyfallConfig{
		Engine: EngineConfig{
			TickRate: core.DefaultTickRate,
		},
		Render: RenderConfig{
			Mode:      RenderBlocks,
			CellWidth: 2,
			Glyph:     "█",
			ShowHelp:  true,
		},
		Theme: ThemeConfig{
			Flux:        "#ccffcc",
			Unbreakable: "#999999",
			Stone:       "#0000cc",
			Box:         "#8b4513",
			Key1:        "#ffcc00",
			Key2:        "#ffcc00",
			Player:      "#ff0000",
			HUD:         "#999999",
		},
	}
}
