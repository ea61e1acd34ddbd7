package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keyfall/internal/core"
	"github.com/vovakirdan/keyfall/internal/platform/tui"
	"github.com/vovakirdan/keyfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to keyfall.

Controls:
  Arrows/WASD  - Move, dig through flux, push blocks sideways
  P/Esc        - Pause
  R            - Restart the level
  Ctrl+S       - Save a text screenshot to ~/.keyfall/screenshots
  Q/Ctrl+C     - Quit

Speed options:
  slow   - 15 ticks per second
  normal - 30 ticks per second
  fast   - 60 ticks per second

Examples:
  keyfall play
  keyfall play --speed fast
  keyfall play --config ./my-keyfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "keyfall"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'keyfall list' to see available games)", err)
	}

	cfg, tickRate := loadConfig()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
	}

	logger.Debug("starting game", "game", gameID, "width", width, "height", height)
	return tui.Run(game, rt, tui.Options{ShowHelp: cfg.Render.ShowHelp})
}
