package tui

import (
	"fmt"
	"strings"
)

func (m MainModel) viewStatistics() string {
	monthly := m.data.MonthlyData()
	skills := m.data.SkillStats()

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Monthly Trend"))
	b.WriteString("\n")
	for _, d := range monthly {
		b.WriteString(fmt.Sprintf("%-10s accuracy %s  sessions %s\n",
			d.Month,
			CurrentTheme.Good.Render(fmt.Sprintf("%3d%%", d.Accuracy)),
			CurrentTheme.Highlight.Render(fmt.Sprintf("%3d", d.Sessions))))
	}
	b.WriteString("\n")

	b.WriteString(CurrentTheme.Title.Render("Skills"))
	b.WriteString("\n")
	for _, s := range skills {
		b.WriteString(m.meter(s.Name, s.Value, 100))
		b.WriteString("  ")
		b.WriteString(CurrentTheme.Dim.Render(s.Trend))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render("g opens the trend chart in your browser; p writes a PDF report."))

	return b.String()
}
