package core

import "fmt"

// glyphs maps layout codes to their ASCII form.
var glyphs = [rawTileCount]rune{
	RawAir:          ' ',
	RawFlux:         '.',
	RawUnbreakable:  '#',
	RawPlayer:       'P',
	RawStone:        'o',
	RawFallingStone: 'O',
	RawBox:          'x',
	RawFallingBox:   'X',
	RawKey1:         'k',
	RawLock1:        'l',
	RawKey2:         'K',
	RawLock2:        'L',
}

// Glyph returns the ASCII glyph for a layout code, '?' if unknown.
func Glyph(raw RawTile) rune {
	if !raw.Valid() {
		return '?'
	}
	return glyphs[raw]
}

// RawFromGlyph is the inverse of Glyph.
func RawFromGlyph(r rune) (RawTile, bool) {
	for i, g := range glyphs {
		if g == r {
			return RawTile(i), true
		}
	}
	return 0, false
}

// ParseASCII converts rows of glyphs into a layout. It does not validate
// the result beyond recognizing every glyph; NewGrid does the rest.
func ParseASCII(rows []string) (Layout, error) {
	layout := make(Layout, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		layout[y] = make([]RawTile, len(runes))
		for x, r := range runes {
			raw, ok := RawFromGlyph(r)
			if !ok {
				return nil, ValidationError{
					Code:    "UNKNOWN_GLYPH",
					Message: fmt.Sprintf("unrecognized glyph %q at (%d, %d)", r, x, y),
				}
			}
			layout[y][x] = raw
		}
	}
	return layout, nil
}

// MustParseASCII is like ParseASCII but panics on error.
func MustParseASCII(rows ...string) Layout {
	layout, err := ParseASCII(rows)
	if err != nil {
		panic(err)
	}
	return layout
}
