package core

import "fmt"

// Simulation is the context object the tick driver talks to: the grid,
// the pending inputs and the key registry.
type Simulation struct {
	grid   *Grid
	inputs InputQueue
	keys   *KeyRegistry
	ticks  uint64
}

// NewSimulation builds a simulation from a layout using the default keys.
func NewSimulation(layout Layout) (*Simulation, error) {
	return NewSimulationWithKeys(layout, DefaultKeyRegistry())
}

// NewSimulationWithKeys builds a simulation with a custom key registry.
func NewSimulationWithKeys(layout Layout, keys *KeyRegistry) (*Simulation, error) {
	if keys == nil {
		keys = DefaultKeyRegistry()
	}
	grid, err := NewGrid(layout, keys)
	if err != nil {
		return nil, fmt.Errorf("keyfall: building grid: %w", err)
	}
	return &Simulation{grid: grid, keys: keys}, nil
}

// MustNewSimulation is like NewSimulation but panics on an invalid layout.
func MustNewSimulation(layout Layout) *Simulation {
	s, err := NewSimulation(layout)
	if err != nil {
		panic(err)
	}
	return s
}

// Enqueue buffers a direction until the next Tick.
func (s *Simulation) Enqueue(d Direction) {
	s.inputs.Enqueue(d)
}

// Pending returns the number of buffered directions.
func (s *Simulation) Pending() int {
	return s.inputs.Len()
}

// Tick advances the simulation one step: every buffered input is applied,
// most recent first, then one gravity pass runs.
func (s *Simulation) Tick() {
	s.inputs.Drain(s.grid.Move)
	s.grid.Update()
	s.ticks++
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Grid returns the simulated grid for read access.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Keys returns the key registry.
func (s *Simulation) Keys() *KeyRegistry {
	return s.keys
}

// ForEachCell visits every cell for rendering.
func (s *Simulation) ForEachCell(fn func(t Tile, x, y int)) {
	s.grid.ForEachCell(fn)
}

// PlayerPosition returns the player's grid coordinates.
func (s *Simulation) PlayerPosition() (x, y int) {
	return s.grid.PlayerPosition()
}
