package core

import "strings"

// Cell is one screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

// Blank is an uncolored space.
var Blank = Cell{Rune: ' '}

// Screen is the colored character buffer games draw into. The platform
// turns it into terminal output. Writes outside the buffer are dropped.
type Screen struct {
	w, h  int
	cells []Cell // row-major
}

// NewScreen returns a blank w by h screen.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.Resize(w, h)
	return s
}

// Width is the number of columns.
func (s *Screen) Width() int { return s.w }

// Height is the number of rows.
func (s *Screen) Height() int { return s.h }

// Bounds is the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return Rect{W: s.w, H: s.h}
}

// Resize changes the dimensions. Cells inside both the old and the new
// size keep their content; the rest is blank.
func (s *Screen) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if s.cells != nil && w == s.w && h == s.h {
		return
	}

	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Blank
	}
	keepW, keepH := min(w, s.w), min(h, s.h)
	for y := range keepH {
		copy(cells[y*w:y*w+keepW], s.cells[y*s.w:y*s.w+keepW])
	}

	s.w, s.h, s.cells = w, h, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Put writes c at (x, y).
func (s *Screen) Put(x, y int, c Cell) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = c
	}
}

// At returns the cell at (x, y), Blank outside the screen.
func (s *Screen) At(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return Blank
}

// Line returns row y for reading, nil outside the screen.
func (s *Screen) Line(y int) []Cell {
	if y < 0 || y >= s.h {
		return nil
	}
	return s.cells[y*s.w : (y+1)*s.w]
}

// DrawText writes text from (x, y) rightwards in color c, clipped at the
// edge.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for _, r := range text {
		s.Put(x, y, Cell{Rune: r, Color: c})
		x++
	}
}

// DrawHLine writes n copies of c from (x, y) rightwards.
func (s *Screen) DrawHLine(x, y, n int, c Cell) {
	for i := range n {
		s.Put(x+i, y, c)
	}
}

// FillRect writes c into every cell of r.
func (s *Screen) FillRect(r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		s.DrawHLine(r.X, y, r.W, c)
	}
}

// DrawBox outlines r with box-drawing runes in color c.
func (s *Screen) DrawBox(r Rect, c Color) {
	if r.Empty() {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.DrawHLine(r.X, r.Y, r.W, Cell{Rune: '─', Color: c})
	s.DrawHLine(r.X, bottom, r.W, Cell{Rune: '─', Color: c})
	for y := r.Y; y <= bottom; y++ {
		s.Put(r.X, y, Cell{Rune: '│', Color: c})
		s.Put(right, y, Cell{Rune: '│', Color: c})
	}

	s.Put(r.X, r.Y, Cell{Rune: '┌', Color: c})
	s.Put(right, r.Y, Cell{Rune: '┐', Color: c})
	s.Put(r.X, bottom, Cell{Rune: '└', Color: c})
	s.Put(right, bottom, Cell{Rune: '┘', Color: c})
}

// Row returns row y as plain text.
func (s *Screen) Row(y int) string {
	line := s.Line(y)
	if line == nil {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	sb.Grow(len(line))
	for _, c := range line {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String is the whole screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
