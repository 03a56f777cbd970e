package tui

import (
	"fmt"
	"strings"
)

func (m MainModel) viewProfile() string {
	p := m.data.Profile()

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render(fmt.Sprintf("(%s) %s", p.Avatar, p.Name)))
	b.WriteString("  ")
	b.WriteString(CurrentTheme.Dim.Render(p.Level + " · joined " + p.JoinDate))
	b.WriteString("\n\n")

	values := []string{p.Name, p.Email, p.Phone, p.Location, p.Level}
	for i, field := range profileFields {
		line := fmt.Sprintf("%-10s %s", field, values[i])
		if i == m.profile.FieldIdx && !m.profile.Editing {
			b.WriteString(CurrentTheme.Focused.Render("> " + line))
		} else {
			b.WriteString(CurrentTheme.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.profile.Editing {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("New %s:\n", profileFields[m.profile.FieldIdx]))
		b.WriteString(CurrentTheme.Input.Render(m.profile.Input.View()))
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render("enter save · esc cancel"))
	}

	return b.String()
}
