package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong-arcade/internal/core"
)

// styles caches a lipgloss style per cell color. SSH sessions render
// concurrently, so access is guarded.
var styles = struct {
	sync.RWMutex
	m map[core.Color]lipgloss.Style
}{m: map[core.Color]lipgloss.Style{}}

func styleFor(c core.Color) lipgloss.Style {
	styles.RLock()
	s, ok := styles.m[c]
	styles.RUnlock()
	if ok {
		return s
	}

	s = lipgloss.NewStyle()
	if c != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(c))
	}
	styles.Lock()
	styles.m[c] = s
	styles.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
