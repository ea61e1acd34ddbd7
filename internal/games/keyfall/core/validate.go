package core

import "fmt"

// ValidationError contains details about a rejected layout.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateLayout checks that a layout can be simulated:
//   - at least 3x3 and rectangular
//   - every code is recognized
//   - the perimeter is entirely UNBREAKABLE
//   - exactly one PLAYER
//
// The perimeter check is what lets the engine skip bounds checks: no fall,
// push or step from an interior cell can reach outside the grid.
func ValidateLayout(layout Layout) error {
	if err := validateShape(layout); err != nil {
		return err
	}

	for y, row := range layout {
		for x, raw := range row {
			if !raw.Valid() {
				return unknownTileError(raw, x, y)
			}
		}
	}

	if err := validateBorder(layout); err != nil {
		return err
	}

	return validatePlayer(layout)
}

// validateShape checks dimensions and rectangularity.
func validateShape(layout Layout) error {
	h, w := layout.Height(), layout.Width()
	if h < 3 || w < 3 {
		return ValidationError{
			Code:    "EMPTY_LAYOUT",
			Message: fmt.Sprintf("layout is %dx%d, need at least 3x3", w, h),
		}
	}
	for y, row := range layout {
		if len(row) != w {
			return ValidationError{
				Code:    "RAGGED_LAYOUT",
				Message: fmt.Sprintf("row %d has %d cells, expected %d", y, len(row), w),
			}
		}
	}
	return nil
}

// validateBorder checks that the outer ring is made of walls.
func validateBorder(layout Layout) error {
	h, w := layout.Height(), layout.Width()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			onEdge := x == 0 || y == 0 || x == w-1 || y == h-1
			if onEdge && layout[y][x] != RawUnbreakable {
				return ValidationError{
					Code:    "OPEN_BORDER",
					Message: fmt.Sprintf("perimeter cell (%d, %d) is %s, expected UNBREAKABLE", x, y, layout[y][x]),
				}
			}
		}
	}
	return nil
}

// validatePlayer checks there is exactly one player start.
func validatePlayer(layout Layout) error {
	count := 0
	for _, row := range layout {
		for _, raw := range row {
			if raw == RawPlayer {
				count++
			}
		}
	}
	if count != 1 {
		return ValidationError{
			Code:    "PLAYER_COUNT",
			Message: fmt.Sprintf("layout has %d PLAYER cells, want 1", count),
		}
	}
	return nil
}

func unknownTileError(raw RawTile, x, y int) error {
	return ValidationError{
		Code:    "UNKNOWN_TILE",
		Message: fmt.Sprintf("unrecognized tile code %d at (%d, %d)", uint8(raw), x, y),
	}
}
