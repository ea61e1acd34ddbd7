package core

// Color is a foreground color for a screen cell, written as a hex RGB
// string ("#rrggbb"). The empty string leaves the terminal default.
type Color string

// ColorDefault renders with the terminal's default foreground.
const ColorDefault Color = ""

// Valid reports whether c is ColorDefault or a well-formed "#rrggbb" value.
func (c Color) Valid() bool {
	if c == ColorDefault {
		return true
	}
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for i := 1; i < len(c); i++ {
		switch ch := c[i]; {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
