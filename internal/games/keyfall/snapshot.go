package keyfall

import "github.com/vovakirdan/keyfall/internal/games/keyfall/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateBroken      GameStateType = "broken" // the layout failed to build
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	PlayerX int
	PlayerY int
	Pending int
	Grid    core.Layout
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{State: StateBroken}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	px, py := g.sim.PlayerPosition()
	return Snapshot{
		Tick:    g.sim.Ticks(),
		PlayerX: px,
		PlayerY: py,
		Pending: g.sim.Pending(),
		Grid:    g.sim.Grid().Snapshot(),
		State:   state,
	}
}
