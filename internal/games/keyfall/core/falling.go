package core

// FallingState is the support state of a Stone or Box.
type FallingState uint8

const (
	// Resting tiles are supported and can be pushed sideways.
	Resting FallingState = iota
	// Falling tiles drop one row per tick and reject pushes.
	Falling
)

// IsFalling reports whether the state is Falling.
func (s FallingState) IsFalling() bool {
	return s == Falling
}

// String returns the name of the state.
func (s FallingState) String() string {
	if s == Falling {
		return "Falling"
	}
	return "Resting"
}

// MoveHorizontal applies the push rule for a block next to the player in
// direction dx. A push succeeds only for a Resting block whose destination,
// two cells from the player, is Air and sits on something other than Air.
func (s FallingState) MoveHorizontal(g *Grid, dx int) {
	if s.IsFalling() {
		return
	}
	destX, y := g.px+dx+dx, g.py
	if g.cells[y][destX].IsAir() && !g.cells[y+1][destX].IsAir() {
		g.cells[y][destX] = g.cells[y][g.px+dx]
		g.moveToTile(g.px+dx, y)
	}
}
