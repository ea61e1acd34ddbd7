package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/keyfall/internal/core"
)

// styleCache maps hex colors to lipgloss styles. SSH sessions render
// concurrently, so access is guarded.
var styleCache = struct {
	sync.Mutex
	styles map[core.Color]lipgloss.Style
}{styles: map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}}

// styleFor returns the style of a color, building it on first use.
// Invalid colors render with the default style.
func styleFor(c core.Color) lipgloss.Style {
	if !c.Valid() {
		c = core.ColorDefault
	}

	styleCache.Lock()
	defer styleCache.Unlock()

	style, ok := styleCache.styles[c]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
		styleCache.styles[c] = style
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		line := s.Line(y)
		for start := 0; start < len(line); {
			color := line[start].Color
			run.Reset()

			end := start
			for ; end < len(line) && line[end].Color == color; end++ {
				run.WriteRune(line[end].Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}
