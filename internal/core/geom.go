// Package core holds the types shared by games and the platform: the
// runtime config, abstract input actions and the colored screen buffer.
// It does not import Bubble Tea; games only ever see these types.
package core

// Rect is an area of the screen in cells. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w by h rectangle centered in r. Odd leftovers go to
// the right and bottom.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}
