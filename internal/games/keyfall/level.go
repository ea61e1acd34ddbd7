package keyfall

import "github.com/vovakirdan/keyfall/internal/games/keyfall/core"

// demoLayout is the fixed starting grid, in layout codes:
//
//	########
//	#P ..# #
//	#o#x.# #
//	#ko..# #
//	#o...l #
//	########
var demoLayout = core.Layout{
	{2, 2, 2, 2, 2, 2, 2, 2},
	{2, 3, 0, 1, 1, 2, 0, 2},
	{2, 4, 2, 6, 1, 2, 0, 2},
	{2, 8, 4, 1, 1, 2, 0, 2},
	{2, 4, 1, 1, 1, 9, 0, 2},
	{2, 2, 2, 2, 2, 2, 2, 2},
}

// DemoLayout returns a fresh copy of the starting grid.
func DemoLayout() core.Layout {
	return demoLayout.Clone()
}
