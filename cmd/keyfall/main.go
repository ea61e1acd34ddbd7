// keyfall is a terminal grid puzzle: push stones and boxes, let them fall,
// collect keys and open the matching locks.
//
// Usage:
//
//	keyfall play             - Play in the terminal
//	keyfall list             - List available games
//	keyfall serve            - Start SSH server for remote play
//	keyfall sim              - Run the simulation headless and print the grid
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: from config)
//	--speed <preset>      - slow, normal or fast
//	--config <path>       - Custom config YAML
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/keyfall/internal/config"
	"github.com/vovakirdan/keyfall/internal/games/keyfall"
)

var (
	// Global flags
	flagFPS      int
	flagSpeed    string
	flagConfig   string
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "keyfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keyfall",
	Short: "Keyfall - a falling-block key puzzle in your terminal",
	Long: `Keyfall is a grid puzzle played in the terminal. Dig through flux,
push stones and boxes (they fall when nothing holds them up), and collect
keys to open every lock of the same color.

Available commands:
  play     - Play in the terminal
  list     - Show all available games
  serve    - Start SSH server for remote play
  sim      - Run moves headless and print the resulting grid

Examples:
  keyfall play
  keyfall play --speed slow
  keyfall serve --ssh :2222
  keyfall sim --inputs right,right,down --ticks 10`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return err
	}
	if flagFPS < 0 {
		return fmt.Errorf("invalid --fps %d: must not be negative", flagFPS)
	}

	keyfall.SetConfigPath(flagConfig)
	keyfall.SetSpeedPreset(preset)
	return nil
}

// loadConfig resolves the session config and the tick rate to run at.
// A broken --config file is reported and replaced by the defaults.
func loadConfig() (config.KeyfallConfig, int) {
	cfg, source, err := config.ResolveKeyfall(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultKeyfallConfig()
		source = config.SourceBuiltin
	}

	preset, _ := config.ParseSpeedPreset(flagSpeed)
	config.ApplySpeedPreset(&cfg, preset)

	tickRate := cfg.Engine.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	logger.Debug("config loaded", "source", source, "tick_rate", tickRate, "render", cfg.Render.Mode)
	return cfg, tickRate
}
