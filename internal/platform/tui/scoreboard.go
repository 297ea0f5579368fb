package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/highscore"
)

// ScoreTable renders finished sessions as a static table under a best-score banner.
func ScoreTable(sessions []highscore.Session, best int, styles Styles) string {
	var sb strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("NEON SNAKE · HI: %04d", best))
	sb.WriteString(title)
	sb.WriteString("\n\n")

	if len(sessions) == 0 {
		sb.WriteString("No games recorded yet.\n")
		return sb.String()
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Cause", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Length),
			s.Cause,
			s.Duration.Round(100 * time.Millisecond).String(),
			s.Player,
			s.EndedAt.Local().Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	if border, ok := styles[core.ColorBorder]; ok {
		st.Header = st.Header.Inherit(border)
	}
	st.Selected = st.Cell
	t.SetStyles(st)

	sb.WriteString(t.View())
	sb.WriteString("\n")
	return sb.String()
}
