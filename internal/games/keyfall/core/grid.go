package core

import (
	"fmt"
	"strings"
)

// Grid owns the tiles of a level and the tracked player position.
// Cells are stored as [y][x]. Every cell always holds a Tile; empty space is
// Air. The perimeter is guaranteed to be Unbreakable by NewGrid, which is what
// keeps every neighbor lookup below inside the grid.
type Grid struct {
	w, h   int
	cells  [][]Tile
	px, py int
	keys   *KeyRegistry
}

// NewGrid validates a layout and builds the live grid from it.
// A nil registry uses DefaultKeyRegistry.
func NewGrid(layout Layout, keys *KeyRegistry) (*Grid, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}
	if keys == nil {
		keys = DefaultKeyRegistry()
	}

	g := &Grid{
		w:     layout.Width(),
		h:     layout.Height(),
		cells: make([][]Tile, layout.Height()),
		keys:  keys,
	}
	for y, row := range layout {
		g.cells[y] = make([]Tile, len(row))
		for x, raw := range row {
			tile, ok := transformTile(raw)
			if !ok {
				return nil, unknownTileError(raw, x, y)
			}
			if tile.IsPlayer() {
				g.px, g.py = x, y
			}
			g.cells[y][x] = tile
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Keys returns the key registry the grid resolves keys against.
func (g *Grid) Keys() *KeyRegistry { return g.keys }

// At returns the tile at (x, y).
func (g *Grid) At(x, y int) Tile {
	return g.cells[y][x]
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// PlayerPosition returns the tracked player coordinates.
func (g *Grid) PlayerPosition() (x, y int) {
	return g.px, g.py
}

// ForEachCell calls fn for every cell in row-major order.
// fn must not retain or mutate the grid.
func (g *Grid) ForEachCell(fn func(t Tile, x, y int)) {
	for y, row := range g.cells {
		for x, t := range row {
			fn(t, x, y)
		}
	}
}

// Move resolves one directional input against the cell the player would
// enter. Moves the rules disallow leave the grid untouched.
func (g *Grid) Move(d Direction) {
	dx, dy := d.Delta()
	if dy == 0 {
		g.MoveHorizontal(dx)
	} else {
		g.MoveVertical(dy)
	}
}

// MoveHorizontal delegates a sideways step to the tile beside the player.
func (g *Grid) MoveHorizontal(dx int) {
	g.cells[g.py][g.px+dx].MoveHorizontal(g, dx)
}

// MoveVertical delegates a vertical step to the tile above or below the player.
func (g *Grid) MoveVertical(dy int) {
	g.cells[g.py+dy][g.px].MoveVertical(g, dy)
}

// moveToTile relocates the player marker. The vacated cell becomes Air.
func (g *Grid) moveToTile(x, y int) {
	g.cells[g.py][g.px] = Air()
	g.cells[y][x] = Player()
	g.px, g.py = x, y
}

// RemoveMatching replaces every tile satisfying shouldRemove with Air.
func (g *Grid) RemoveMatching(shouldRemove RemoveStrategy) {
	for y := range g.cells {
		for x := range g.cells[y] {
			if shouldRemove(g.cells[y][x]) {
				g.cells[y][x] = Air()
			}
		}
	}
}

// Update runs one gravity pass. Rows are visited bottom to top so a tile
// that drops into a lower row is not visited again in the same pass.
func (g *Grid) Update() {
	for y := g.h - 1; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			g.cells[y][x].Update(g, x, y)
		}
	}
}

// Snapshot returns the grid as layout codes. Movable tiles report their
// current falling state.
func (g *Grid) Snapshot() Layout {
	out := make(Layout, g.h)
	for y, row := range g.cells {
		out[y] = make([]RawTile, len(row))
		for x, t := range row {
			out[y][x] = t.Raw()
		}
	}
	return out
}

// CheckInvariants verifies that exactly one cell holds the player marker
// and that it matches the tracked position.
func (g *Grid) CheckInvariants() error {
	players := 0
	for y, row := range g.cells {
		for x, t := range row {
			if !t.IsPlayer() {
				continue
			}
			players++
			if x != g.px || y != g.py {
				return ValidationError{
					Code:    "PLAYER_MISMATCH",
					Message: fmt.Sprintf("player marker at (%d, %d), tracked (%d, %d)", x, y, g.px, g.py),
				}
			}
		}
	}
	if players != 1 {
		return ValidationError{
			Code:    "PLAYER_COUNT",
			Message: fmt.Sprintf("found %d player markers, want 1", players),
		}
	}
	return nil
}

// String renders the grid with the ASCII glyph table, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(Glyph(t.Raw()))
		}
	}
	return sb.String()
}
