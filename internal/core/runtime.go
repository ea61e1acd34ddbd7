package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 30

// RuntimeConfig describes the session a game runs in.
type RuntimeConfig struct {
	ScreenW  int // Columns handed to the game
	ScreenH  int // Rows handed to the game
	TickRate int // Simulation ticks per second
}

// WithDefaults fills in a missing tick rate.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Paused bool // Paused by the player
	Frozen bool // Cannot run: no level, or the screen is too small for it
}

// Running reports whether the next Step advances the simulation.
func (s GameState) Running() bool {
	return !s.Paused && !s.Frozen
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State  GameState
	Ticked bool // The simulation advanced during this step
}
