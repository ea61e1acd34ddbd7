// Package keyfall wires the Keyfall puzzle engine into the platform:
// actions become queued moves, each Step runs one simulation tick, and
// Render draws the grid with the configured theme.
package keyfall

import (
	"sync"

	"github.com/vovakirdan/keyfall/internal/config"
	platformcore "github.com/vovakirdan/keyfall/internal/core"
	"github.com/vovakirdan/keyfall/internal/games/keyfall/core"
	"github.com/vovakirdan/keyfall/internal/registry"
)

// hudHeight is the number of rows above the grid (status line + separator).
const hudHeight = 2

var (
	settingsMu  sync.RWMutex
	configPath  string
	speedPreset config.SpeedPreset
)

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetSpeedPreset sets the speed preset applied on top of the loaded config.
func SetSpeedPreset(preset config.SpeedPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	speedPreset = preset
}

// LoadConfig resolves the config the game will use, with the speed preset
// applied. The CLI uses it to pick the tick rate before starting the loop.
func LoadConfig() (config.KeyfallConfig, error) {
	settingsMu.RLock()
	path, preset := configPath, speedPreset
	settingsMu.RUnlock()

	cfg, err := config.LoadKeyfall(path)
	if err != nil {
		return cfg, err
	}
	config.ApplySpeedPreset(&cfg, preset)
	return cfg, nil
}

// Game implements registry.Game for Keyfall.
type Game struct {
	sim *core.Simulation
	cfg config.KeyfallConfig
	err error // construction failure, shown instead of the grid

	screenW int
	screenH int

	paused   bool
	tooSmall bool

	// Calculated grid origin on screen
	gridOffsetX int
	gridOffsetY int
}

// New creates a new Keyfall game instance.
func New() *Game {
	return &Game{cfg: config.DefaultKeyfallConfig()}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "keyfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Keyfall"
}

// Reset loads the config and rebuilds the starting grid.
func (g *Game) Reset(rt platformcore.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultKeyfallConfig()
	}
	g.cfg = cfg
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.paused = false
	g.restart()
}

// Resize adapts the layout to new screen dimensions without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// restart rebuilds the simulation from the demo layout.
func (g *Game) restart() {
	keys := core.NewKeyRegistry(g.cfg.Theme.Key1, g.cfg.Theme.Key2)
	g.sim, g.err = core.NewSimulationWithKeys(DemoLayout(), keys)
	g.calculateLayout()
}

// calculateLayout centers the grid below the HUD and flags screens too
// small to show it whole.
func (g *Game) calculateLayout() {
	if g.sim == nil {
		return
	}
	gridW := g.sim.Grid().Width() * g.cfg.Render.CellWidth
	gridH := g.sim.Grid().Height()

	g.tooSmall = g.screenW < gridW || g.screenH < gridH+hudHeight
	if g.tooSmall {
		return
	}
	g.gridOffsetX = (g.screenW - gridW) / 2
	g.gridOffsetY = hudHeight + (g.screenH-hudHeight-gridH)/2
}

// Step queues this frame's moves in press order and runs one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Pressed(platformcore.ActionRestart) {
		g.paused = false
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if in.Pressed(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	state := g.State()
	if !state.Running() {
		return platformcore.StepResult{State: state}
	}

	for _, a := range in.Presses() {
		if d, ok := directionFor(a); ok {
			g.sim.Enqueue(d)
		}
	}
	g.sim.Tick()

	return platformcore.StepResult{State: state, Ticked: true}
}

// directionFor maps movement actions to engine directions.
func directionFor(a platformcore.Action) (core.Direction, bool) {
	switch a {
	case platformcore.ActionLeft:
		return core.Left, true
	case platformcore.ActionRight:
		return core.Right, true
	case platformcore.ActionUp:
		return core.Up, true
	case platformcore.ActionDown:
		return core.Down, true
	default:
		return 0, false
	}
}

// State returns the current game state. Keyfall has no score and no
// losing condition.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Paused: g.paused,
		Frozen: g.sim == nil || g.tooSmall,
	}
}

// Simulation exposes the running engine, nil if construction failed.
func (g *Game) Simulation() *core.Simulation {
	return g.sim
}

// Err returns the error that prevented the grid from being built.
func (g *Game) Err() error {
	return g.err
}

func init() {
	registry.Register("keyfall", func() registry.Game {
		return New()
	})
}
