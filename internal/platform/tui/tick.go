// Package tui provides the Bubble Tea integration for Keyfall.
// It handles the terminal UI loop, input mapping, frame pacing and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keyfall/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameInterval returns the target time between ticks.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// nextDelay is how long to wait before the next tick after a frame that
// took elapsed. Slow frames start the next tick immediately; ticks are
// never skipped to catch up.
func nextDelay(interval, elapsed time.Duration) time.Duration {
	if elapsed >= interval {
		return 0
	}
	return interval - elapsed
}

// tickCmd returns a Bubble Tea command that sends a tick message after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
