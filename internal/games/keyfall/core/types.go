// Package core implements the Keyfall simulation engine: the tile model,
// gravity, block pushing and key/lock resolution.
// This package is UI-agnostic and deterministic.
package core

import "strings"

// RawTile is the symbolic code of a tile in an initial layout.
// The numeric order matches the classic level format.
type RawTile uint8

const (
	RawAir RawTile = iota
	RawFlux
	RawUnbreakable
	RawPlayer
	RawStone
	RawFallingStone
	RawBox
	RawFallingBox
	RawKey1
	RawLock1
	RawKey2
	RawLock2

	rawTileCount
)

var rawTileNames = [rawTileCount]string{
	RawAir:          "AIR",
	RawFlux:         "FLUX",
	RawUnbreakable:  "UNBREAKABLE",
	RawPlayer:       "PLAYER",
	RawStone:        "STONE",
	RawFallingStone: "FALLING_STONE",
	RawBox:          "BOX",
	RawFallingBox:   "FALLING_BOX",
	RawKey1:         "KEY1",
	RawLock1:        "LOCK1",
	RawKey2:         "KEY2",
	RawLock2:        "LOCK2",
}

// String returns the symbolic name of the code.
func (r RawTile) String() string {
	if !r.Valid() {
		return "UNKNOWN"
	}
	return rawTileNames[r]
}

// Valid reports whether r is one of the recognized tile codes.
func (r RawTile) Valid() bool {
	return r < rawTileCount
}

// ParseRawTile converts a symbolic name (case-insensitive) to a RawTile.
func ParseRawTile(name string) (RawTile, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, n := range rawTileNames {
		if n == name {
			return RawTile(i), true
		}
	}
	return 0, false
}

// Layout is a rectangular array of tile codes indexed as [y][x].
type Layout [][]RawTile

// Height returns the number of rows.
func (l Layout) Height() int {
	return len(l)
}

// Width returns the length of the first row, or 0 for an empty layout.
func (l Layout) Width() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// Clone returns a deep copy of the layout.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	for y, row := range l {
		out[y] = append([]RawTile(nil), row...)
	}
	return out
}

// Default tile colors as hex RGB.
const (
	ColorFlux        = "#ccffcc"
	ColorUnbreakable = "#999999"
	ColorStone       = "#0000cc"
	ColorBox         = "#8b4513"
	ColorKey1        = "#ffcc00"
	ColorKey2        = "#ffcc00"
	ColorPlayer      = "#ff0000"
)
