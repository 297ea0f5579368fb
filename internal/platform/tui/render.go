package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Styles maps colour roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the role styles from a theme.
func NewStyles(theme config.ThemeConfig) Styles {
	fg := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorHead:    fg(theme.Head).Bold(true),
		core.ColorBody:    fg(theme.Body),
		core.ColorFood:    fg(theme.Food).Bold(true),
		core.ColorBorder:  fg(theme.Border),
		core.ColorText:    fg(theme.Text).Bold(true),
		core.ColorDim:     fg(theme.Dim),
		core.ColorAlert:   fg(theme.Alert).Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colour to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colour for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
