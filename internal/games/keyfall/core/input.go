package core

import (
	"fmt"
	"strings"
)

// Direction is a single directional input.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Delta returns the grid offset of the direction. Up is -y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names or their first letter, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// InputQueue buffers directions between ticks.
// It is not safe for concurrent use; the tick driver owns it.
type InputQueue struct {
	buf []Direction
}

// Enqueue appends a direction to the buffer.
func (q *InputQueue) Enqueue(d Direction) {
	q.buf = append(q.buf, d)
}

// Len returns the number of pending directions.
func (q *InputQueue) Len() int {
	return len(q.buf)
}

// Drain empties the buffer, most recently enqueued first.
// Directions enqueued by fn are drained in the same call.
func (q *InputQueue) Drain(fn func(Direction)) {
	for len(q.buf) > 0 {
		last := len(q.buf) - 1
		d := q.buf[last]
		q.buf = q.buf[:last]
		fn(d)
	}
}
