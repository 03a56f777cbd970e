package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/coachtrack/internal/config"
)

func (m MainModel) viewHistory() string {
	records := m.data.TrainingRecords()

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render(fmt.Sprintf("Training History (%d)", len(records))))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No activities logged."))
		return b.String()
	}

	// Keep the cursor visible within a fixed-height window.
	start := 0
	if m.historyIdx >= config.MaxVisibleRecords {
		start = m.historyIdx - config.MaxVisibleRecords + 1
	}
	end := start + config.MaxVisibleRecords
	if end > len(records) {
		end = len(records)
	}

	for i := start; i < end; i++ {
		r := records[i]
		line := fmt.Sprintf("%s  %-16s %-8s %-10s", r.Date, r.Type, r.Duration, r.Status)
		if r.Accuracy > 0 {
			line += fmt.Sprintf(" %d%%", r.Accuracy)
		}
		if i == m.historyIdx {
			b.WriteString(CurrentTheme.Focused.Render("> " + line))
		} else {
			b.WriteString(CurrentTheme.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if end < len(records) {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("... %d more", len(records)-end)))
	}
	return b.String()
}
