// Package report renders batch summaries for terminals, keeping presentation
// out of the aggregation path.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/doorgame/montyhall/internal/game"
	"github.com/doorgame/montyhall/internal/sim"
)

const (
	labelWidth = 10
	rateWidth  = 8
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D75F5F"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

type row struct {
	label string
	stats sim.StrategySummary
}

func strategyRows(s sim.Summary) []row {
	return []row{
		{game.Stay.String(), s.Stay},
		{game.Switch.String(), s.Switch},
	}
}

// Render returns the proportions table styled for a terminal: one row per
// strategy, win and lose proportions as columns.
func Render(s sim.Summary) string {
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			headerStyle.Width(labelWidth).Render("strategy"),
			headerStyle.Width(rateWidth).Align(lipgloss.Right).Render("win"),
			headerStyle.Width(rateWidth).Align(lipgloss.Right).Render("lose"),
		),
	}

	for _, r := range strategyRows(s) {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(labelWidth).Render(r.label),
			winStyle.Width(rateWidth).Align(lipgloss.Right).Render(r.stats.WinRate.StringFixed(2)),
			loseStyle.Width(rateWidth).Align(lipgloss.Right).Render(r.stats.LoseRate.StringFixed(2)),
		))
	}

	lines = append(lines, "", footerStyle.Render(roundsLine(s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Fprint writes the proportions table unstyled, for pipes and logs.
func Fprint(w io.Writer, s sim.Summary) error {
	if _, err := fmt.Fprintf(w, "%-*s%*s%*s\n", labelWidth, "strategy", rateWidth, "win", rateWidth, "lose"); err != nil {
		return err
	}

	for _, r := range strategyRows(s) {
		_, err := fmt.Fprintf(w, "%-*s%*s%*s\n",
			labelWidth, r.label,
			rateWidth, r.stats.WinRate.StringFixed(2),
			rateWidth, r.stats.LoseRate.StringFixed(2),
		)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", roundsLine(s))
	return err
}

func roundsLine(s sim.Summary) string {
	return fmt.Sprintf("%s rounds", humanize.Comma(int64(s.RoundsPlayed)))
}
