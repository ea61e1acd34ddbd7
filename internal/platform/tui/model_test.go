package tui

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keyfall/internal/core"
	"github.com/vovakirdan/keyfall/internal/games/keyfall"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestModel runs Init and the first tick of a keyfall session.
func newTestModel(t *testing.T, opts Options) (Model, *keyfall.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	game := keyfall.New()
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 14, TickRate: 30}, opts)
	require.NotNil(t, m.Init())
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNextDelay(t *testing.T) {
	interval := 33 * time.Millisecond

	tests := []struct {
		name    string
		elapsed time.Duration
		want    time.Duration
	}{
		{"fast frame", 3 * time.Millisecond, 30 * time.Millisecond},
		{"instant frame", 0, interval},
		{"exactly on budget", interval, 0},
		{"slow frame is not negative", 50 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextDelay(interval, tc.elapsed))
		})
	}
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, time.Second/30, frameInterval(30))
	assert.Equal(t, time.Second/60, frameInterval(60))
	assert.Equal(t, time.Second/30, frameInterval(0), "non-positive rate falls back to 30")
}

func TestKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", keyRunes("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", keyRunes("d"), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", keyRunes("w"), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", keyRunes("s"), core.ActionDown, false},
		{"p", keyRunes("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", keyRunes("r"), core.ActionRestart, false},
		{"q", keyRunes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", keyRunes("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.quit, quit)
		})
	}

	assert.Len(t, km.FullHelp(), 2)
	assert.NotEmpty(t, km.ShortHelp())
}

func TestModelTickAppliesKeysInOrder(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, keyRunes("d"))
	m, cmd := update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd, "tick schedules the next tick")

	snap := game.Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, 3, snap.PlayerX)

	// Inputs are consumed by the tick.
	_, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 3, game.Snapshot().PlayerX)
	assert.Equal(t, uint64(2), game.Snapshot().Tick)
}

func TestModelViewShowsFrame(t *testing.T) {
	m, _ := newTestModel(t, Options{ShowHelp: true})
	assert.Equal(t, 13, m.screen.Height(), "help footer takes the last row")

	m, _ = update(t, m, TickMsg(time.Now()))
	view := stripANSI(m.View())

	assert.Contains(t, view, "Keyfall | Tick: 1")
	assert.Contains(t, view, "restart")
	assert.Contains(t, view, "quit")
}

func TestModelTracksGameState(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, keyRunes("p"))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.True(t, m.gameState.Paused)
	assert.Contains(t, stripANSI(m.View()), "PAUSED")

	m, _ = update(t, m, keyRunes("p"))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.False(t, m.gameState.Paused)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsProgress(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Equal(t, 60, m.screen.Width())
	snap := game.Snapshot()
	assert.Equal(t, 2, snap.PlayerX)
	assert.Equal(t, uint64(1), snap.Tick)
}

func TestModelMeasuresFrameTime(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	clock := time.Unix(0, 0)
	m.now = func() time.Time {
		clock = clock.Add(5 * time.Millisecond)
		return clock
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, 5*time.Millisecond, m.frameTime)
}

func TestSaveScreenshot(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = update(t, m, TickMsg(time.Now()))
	m.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	path, err := m.saveScreenshot()
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".keyfall", "screenshots", "keyfall_20240501_123000.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), " Keyfall | Tick: 1"))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "##", "#999999")
	s.DrawText(2, 0, "ab", core.ColorDefault)
	s.Put(0, 1, core.Cell{Rune: 'o', Color: "#0000cc"})
	s.Put(1, 1, core.Cell{Rune: 'x', Color: "not-a-color"})

	assert.Equal(t, s.String(), stripANSI(RenderScreen(s)))
}
