package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/coachtrack/internal/models"
)

func (m MainModel) viewCalendar() string {
	sessions := m.data.TrainingSessions()

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Training Calendar"))
	b.WriteString("\n\n")

	if len(sessions) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("Nothing scheduled."))
		return b.String()
	}

	for i, s := range sessions {
		marker := "  "
		if i == m.calendarIdx {
			marker = "> "
		}
		line := fmt.Sprintf("%s%-10s %-8s %-16s %s (%s)", marker, s.Day, s.Date, s.Type, s.Time, s.Duration)
		switch s.Status {
		case models.SessionCompleted:
			b.WriteString(CurrentTheme.Good.Render(line + "  ✓"))
		case models.SessionMissed:
			b.WriteString(CurrentTheme.Bad.Render(line + "  ✗"))
		default:
			if i == m.calendarIdx {
				b.WriteString(CurrentTheme.Focused.Render(line))
			} else {
				b.WriteString(CurrentTheme.Text.Render(line))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
