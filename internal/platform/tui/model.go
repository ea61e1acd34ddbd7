package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keyfall/internal/core"
	"github.com/vovakirdan/keyfall/internal/registry"
)

// Resizer is implemented by games that can adapt to a new screen size
// without resetting. Other games are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Options tune a game session.
type Options struct {
	ShowHelp bool // reserve the last row for the key help footer
}

// Model is the Bubble Tea model for running a game.
//
// Each tick runs one Step and renders the frame; the time both took is
// subtracted from the next tick's delay.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	frame      string
	frameTime  time.Duration
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	m := Model{
		game:   game,
		config: cfg.WithDefaults(),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		now:    time.Now,
	}
	m.screen = core.NewScreen(m.gameSize(cfg.ScreenW, cfg.ScreenH))
	return m
}

// gameSize returns the screen area left to the game.
func (m Model) gameSize(w, h int) (int, int) {
	if m.opts.ShowHelp && h > 1 {
		h--
	}
	return w, h
}

// runtimeConfig is the config with the screen size the game actually gets.
func (m Model) runtimeConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenW, cfg.ScreenH = m.screen.Width(), m.screen.Height()
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtimeConfig())
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(m.gameSize(msg.Width, msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	} else {
		m.game.Reset(m.runtimeConfig())
	}

	return m, nil
}

// handleTick runs one simulation step, renders it and schedules the next
// tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := m.now()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Reset()

	m.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)

	m.frameTime = m.now().Sub(start)
	return m, tickCmd(nextDelay(frameInterval(m.config.TickRate), m.frameTime))
}

// saveScreenshot writes the current screen as plain text to
// ~/.keyfall/screenshots and returns the file path.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".keyfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View returns the last rendered frame, plus the help footer if enabled.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.opts.ShowHelp {
		return m.frame
	}
	return m.frame + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
