package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) viewDashboard() string {
	stats := m.data.DashboardStats()
	goals := m.data.TrainingGoals()
	records := m.data.TrainingRecords()
	achievements := m.data.Achievements()

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Weekly sessions", fmt.Sprintf("%d", stats.WeeklyTraining)),
		statCard("Avg accuracy", fmt.Sprintf("%d%%", stats.AverageAccuracy)),
		statCard("Training hours", fmt.Sprintf("%.1f", stats.TrainingHours)),
		statCard("Plan completion", fmt.Sprintf("%d%%", stats.PlanCompletion)),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(CurrentTheme.Title.Render("Training Goals"))
	b.WriteString("\n")
	b.WriteString(m.meter("Video analysis", goals.VideoAnalysis.Current, goals.VideoAnalysis.Target))
	b.WriteString("\n")
	b.WriteString(m.meter("Strength", goals.StrengthTraining.Current, goals.StrengthTraining.Target))
	b.WriteString("\n")
	b.WriteString(m.meter("Agility", goals.AgilityTraining.Current, goals.AgilityTraining.Target))
	b.WriteString("\n\n")

	b.WriteString(CurrentTheme.Title.Render("Recent Activity"))
	b.WriteString("\n")
	recent := records
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if len(recent) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No activities logged yet."))
		b.WriteString("\n")
	}
	for _, r := range recent {
		line := fmt.Sprintf("%s  %-16s %-8s", r.Date, r.Type, r.Duration)
		if r.Accuracy > 0 {
			line += CurrentTheme.Good.Render(fmt.Sprintf(" %d%%", r.Accuracy))
		}
		b.WriteString(CurrentTheme.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(CurrentTheme.Title.Render("Achievements"))
	b.WriteString("\n")
	for _, a := range achievements {
		b.WriteString(fmt.Sprintf("%s %s  %s\n", a.Icon, CurrentTheme.Text.Render(a.Title), CurrentTheme.Dim.Render(a.Date)))
	}

	return b.String()
}
