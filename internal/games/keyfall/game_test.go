package keyfall

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keyfall/internal/config"
	platformcore "github.com/vovakirdan/keyfall/internal/core"
	"github.com/vovakirdan/keyfall/internal/games/keyfall/core"
	"github.com/vovakirdan/keyfall/internal/registry"
)

// newGame builds a game that only sees the embedded default config.
func newGame(t *testing.T, w, h int) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 30})
	require.NoError(t, g.Err())
	return g
}

// useConfig points the game at a custom config file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	return platformcore.NewInputFrame(actions...)
}

func play(g *Game, actions ...platformcore.Action) {
	for _, a := range actions {
		g.Step(frame(a))
	}
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("keyfall"))

	g, err := registry.Create("keyfall")
	require.NoError(t, err)
	assert.Equal(t, "Keyfall", g.Title())
}

func TestDemoLayoutIsValid(t *testing.T) {
	require.NoError(t, core.ValidateLayout(DemoLayout()))

	a := DemoLayout()
	a[1][2] = core.RawFlux
	assert.Equal(t, core.RawAir, DemoLayout()[1][2], "DemoLayout returns a copy")
}

func TestDemoThroughGame(t *testing.T) {
	g := newGame(t, 80, 24)

	play(g,
		platformcore.ActionDown, // blocked by the stone
		platformcore.ActionRight,
		platformcore.ActionRight,
		platformcore.ActionRight,
		platformcore.ActionDown,
		platformcore.ActionDown,
		platformcore.ActionLeft,
		platformcore.ActionDown,
	)

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, uint64(8), snap.Tick)
	assert.Equal(t, [2]int{3, 4}, [2]int{snap.PlayerX, snap.PlayerY})
	assert.Equal(t, core.RawFallingBox, snap.Grid[3][3])
	assert.Equal(t, core.RawLock1, snap.Grid[4][5])
}

func TestPressesInOneFrameResolveLastFirst(t *testing.T) {
	t.Run("right then left", func(t *testing.T) {
		g := newGame(t, 80, 24)
		g.Step(frame(platformcore.ActionRight, platformcore.ActionLeft))

		// Left resolves first against the wall, then Right succeeds.
		snap := g.Snapshot()
		assert.Equal(t, [2]int{2, 1}, [2]int{snap.PlayerX, snap.PlayerY})
	})

	t.Run("left then right", func(t *testing.T) {
		g := newGame(t, 80, 24)
		g.Step(frame(platformcore.ActionLeft, platformcore.ActionRight))

		snap := g.Snapshot()
		assert.Equal(t, [2]int{1, 1}, [2]int{snap.PlayerX, snap.PlayerY})
	})

	t.Run("repeated presses all count", func(t *testing.T) {
		g := newGame(t, 80, 24)
		g.Step(frame(platformcore.ActionRight, platformcore.ActionRight, platformcore.ActionRight))

		snap := g.Snapshot()
		assert.Equal(t, [2]int{4, 1}, [2]int{snap.PlayerX, snap.PlayerY})
		assert.Equal(t, uint64(1), snap.Tick)
	})
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newGame(t, 80, 24)

	res := g.Step(frame(platformcore.ActionPause))
	require.True(t, res.State.Paused)
	assert.False(t, res.Ticked)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	play(g, platformcore.ActionRight, platformcore.ActionRight)
	snap := g.Snapshot()
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Equal(t, 1, snap.PlayerX)
	assert.Equal(t, 0, snap.Pending, "moves pressed while paused are dropped")

	// Unpausing runs the tick of the same frame.
	res = g.Step(frame(platformcore.ActionPause, platformcore.ActionRight))
	assert.True(t, res.Ticked)
	assert.False(t, g.State().Paused)
	assert.Equal(t, 2, g.Snapshot().PlayerX)
}

func TestRestartRebuildsLevel(t *testing.T) {
	g := newGame(t, 80, 24)
	play(g, platformcore.ActionRight, platformcore.ActionRight, platformcore.ActionPause)

	g.Step(frame(platformcore.ActionRestart))

	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Equal(t, [2]int{1, 1}, [2]int{snap.PlayerX, snap.PlayerY})
	assert.Equal(t, DemoLayout(), snap.Grid)
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newGame(t, 80, 24)
	play(g, platformcore.ActionRight)

	g.Resize(10, 4)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.True(t, g.State().Frozen)

	play(g, platformcore.ActionRight)
	assert.Equal(t, 2, g.Snapshot().PlayerX, "no ticks while the window is too small")

	g.Resize(80, 24)
	play(g, platformcore.ActionRight)
	snap := g.Snapshot()
	assert.Equal(t, StatePlaying, snap.State)
	assert.Equal(t, 3, snap.PlayerX)
	assert.Equal(t, uint64(2), snap.Tick)
}

func TestDeterminism(t *testing.T) {
	inputs := []platformcore.Action{
		platformcore.ActionRight, platformcore.ActionDown, platformcore.ActionRight,
		platformcore.ActionDown, platformcore.ActionLeft, platformcore.ActionUp,
		platformcore.ActionLeft, platformcore.ActionDown,
	}

	g1 := newGame(t, 80, 24)
	g2 := newGame(t, 80, 24)
	for i := range 60 {
		var f platformcore.InputFrame
		if i%3 == 0 {
			f.Press(inputs[(i/3)%len(inputs)])
		}
		g1.Step(f)
		g2.Step(f)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestRenderBlocks(t *testing.T) {
	g := newGame(t, 40, 12)
	screen := platformcore.NewScreen(40, 12)

	g.Render(screen)

	// Grid is 16x6 on screen, centered below the two HUD rows at (12, 4).
	assert.True(t, strings.HasPrefix(screen.Row(0), " Keyfall | Tick: 0 | Player: 1,1"))
	assert.Equal(t, platformcore.Cell{Rune: '─', Color: "#999999"}, screen.At(0, 1))

	wall := platformcore.Cell{Rune: '█', Color: "#999999"}
	assert.Equal(t, wall, screen.At(12, 4))
	assert.Equal(t, wall, screen.At(13, 4))

	player := platformcore.Cell{Rune: '█', Color: "#ff0000"}
	assert.Equal(t, player, screen.At(14, 5))
	assert.Equal(t, player, screen.At(15, 5))

	assert.Equal(t, platformcore.Cell{Rune: ' '}, screen.At(16, 5), "air is blank")
	assert.Equal(t, platformcore.Color("#ccffcc"), screen.At(18, 5).Color, "flux")
	assert.Equal(t, platformcore.Color("#0000cc"), screen.At(14, 6).Color, "stone")
	assert.Equal(t, platformcore.Color("#8b4513"), screen.At(18, 6).Color, "box")
	assert.Equal(t, platformcore.Color("#ffcc00"), screen.At(14, 7).Color, "key1")
	assert.Equal(t, platformcore.Color("#ffcc00"), screen.At(22, 8).Color, "lock1")
}

func TestRenderASCIIWithTheme(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	useConfig(t, "render:\n  mode: ascii\n  cell_width: 1\ntheme:\n  key1: \"#00ccff\"\n")

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 8, ScreenH: 8})
	require.NoError(t, g.Err())

	screen := platformcore.NewScreen(8, 8)
	g.Render(screen)

	// 8x6 grid fills the width, rows 2..7.
	assert.Equal(t, "########", screen.Row(2))
	assert.Equal(t, "#P ..# #", screen.Row(3))
	assert.Equal(t, "#ko..# #", screen.Row(5))
	assert.Equal(t, platformcore.Color("#00ccff"), screen.At(1, 5).Color)
	assert.Equal(t, platformcore.Color("#00ccff"), screen.At(5, 6).Color, "locks follow their key")
	assert.Equal(t, platformcore.Color("#ff0000"), screen.At(1, 3).Color)
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newGame(t, 40, 12)
	g.Step(frame(platformcore.ActionPause))

	screen := platformcore.NewScreen(40, 12)
	g.Render(screen)

	assert.Contains(t, screen.String(), "PAUSED")
	assert.Contains(t, screen.String(), "Press P to resume")
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, 30, 6)

	screen := platformcore.NewScreen(30, 6)
	g.Render(screen)

	assert.Equal(t, StatePausedSmall, g.Snapshot().State)
	assert.Contains(t, screen.String(), "Resize to continue")
}

func TestSpeedPresetInLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetSpeedPreset(config.SpeedFast)
	t.Cleanup(func() { SetSpeedPreset("") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Engine.TickRate)
}

func TestBadConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	_, err := LoadConfig()
	require.Error(t, err)

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	assert.NoError(t, g.Err())
	assert.Equal(t, config.DefaultKeyfallConfig(), g.cfg)
}
