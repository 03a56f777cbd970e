package tui

import (
	"fmt"
	"strings"
)

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m MainModel) viewSettings() string {
	s := m.prefs.Get()

	rows := []struct {
		label string
		value string
	}{
		{"Theme", s.Theme},
		{"Language", s.Language},
		{"Training reminder", onOff(s.Notifications.TrainingReminder)},
		{"Achievement toasts", onOff(s.Notifications.AchievementNotification)},
		{"Weekly report", onOff(s.Notifications.WeeklyReport)},
		{"Weekly target", fmt.Sprintf("%d sessions", s.TrainingGoals.WeeklyTrainingTarget)},
		{"Accuracy target", fmt.Sprintf("%d%%", s.TrainingGoals.AccuracyTarget)},
		{"Share data", onOff(s.Privacy.ShareData)},
		{"Analytics", onOff(s.Privacy.AnalyticsEnabled)},
		{"Export settings", "write JSON to exports dir"},
		{"Import settings", "read JSON from a file"},
		{"Reset to defaults", ""},
		{"Clear stored data", "wipe preferences database"},
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Title.Render("Settings"))
	if m.exportKey != "" {
		b.WriteString("  ")
		b.WriteString(CurrentTheme.Dim.Render("(exports encrypted)"))
	}
	b.WriteString("\n\n")

	for i, row := range rows {
		line := fmt.Sprintf("%-20s %s", row.label, CurrentTheme.Highlight.Render(row.value))
		if i == m.settingsTab.Cursor {
			b.WriteString(CurrentTheme.Focused.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.settingsTab.Importing {
		b.WriteString("\nSettings file path:\n")
		b.WriteString(CurrentTheme.Input.Render(m.settingsTab.Input.View()))
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render("enter import · esc cancel"))
	}

	return b.String()
}
