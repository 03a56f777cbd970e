package tui

import (
	"os"
	"strings"

	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/settings"
	"github.com/akyairhashvil/coachtrack/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// settingsRows enumerates the settings panel in display order.
const (
	rowTheme = iota
	rowLanguage
	rowTrainingReminder
	rowAchievementNotify
	rowWeeklyReport
	rowWeeklyTarget
	rowAccuracyTarget
	rowShareData
	rowAnalytics
	rowExport
	rowImport
	rowReset
	rowClearData
	settingsRowCount
)

var themeCycle = []string{settings.ThemeLight, settings.ThemeDark, settings.ThemeSystem}
var languageCycle = []string{"zh-CN", "en", "ja"}

func (m MainModel) handleSettingsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.settingsTab.Cursor > 0 {
			m.settingsTab.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.settingsTab.Cursor < settingsRowCount-1 {
			m.settingsTab.Cursor++
		}
		return m, nil
	case "left", "h":
		return m.adjustSettingsRow(-1)
	case "right", "l":
		return m.adjustSettingsRow(1)
	case "enter", " ":
		return m.activateSettingsRow()
	}
	return m, nil
}

// activateSettingsRow toggles or triggers the focused row.
func (m MainModel) activateSettingsRow() (tea.Model, tea.Cmd) {
	current := m.prefs.Get()
	switch m.settingsTab.Cursor {
	case rowTheme:
		return m.adjustSettingsRow(1)
	case rowLanguage:
		return m.adjustSettingsRow(1)
	case rowTrainingReminder:
		return m.setNotification("trainingReminder", !current.Notifications.TrainingReminder)
	case rowAchievementNotify:
		return m.setNotification("achievementNotification", !current.Notifications.AchievementNotification)
	case rowWeeklyReport:
		return m.setNotification("weeklyReport", !current.Notifications.WeeklyReport)
	case rowShareData:
		return m.setPrivacy("shareData", !current.Privacy.ShareData)
	case rowAnalytics:
		return m.setPrivacy("analyticsEnabled", !current.Privacy.AnalyticsEnabled)
	case rowExport:
		return m.exportSettingsFile()
	case rowImport:
		m.settingsTab.Importing = true
		m.settingsTab.Input.SetValue("")
		m.settingsTab.Input.Focus()
		return m, nil
	case rowReset:
		m.prefs.Reset()
		return m, m.pushToast(models.NotifySuccess, "Settings reset", "Defaults restored")
	case rowClearData:
		if err := m.prefs.ClearPersisted(); err != nil {
			util.LogError("clear settings", err)
			return m, m.pushToast(models.NotifyError, "Clear failed", err.Error())
		}
		return m, m.pushToast(models.NotifySuccess, "Data cleared", "Stored preferences wiped, defaults restored")
	}
	return m, nil
}

// adjustSettingsRow cycles enumerated rows or steps numeric targets.
func (m MainModel) adjustSettingsRow(delta int) (tea.Model, tea.Cmd) {
	current := m.prefs.Get()
	switch m.settingsTab.Cursor {
	case rowTheme:
		next := cycle(themeCycle, current.Theme, delta)
		util.LogError("set theme", m.prefs.SetTheme(next))
		return m, nil
	case rowLanguage:
		next := cycle(languageCycle, current.Language, delta)
		util.LogError("set language", m.prefs.SetLanguage(next))
		return m, nil
	case rowWeeklyTarget:
		target := util.Clamp(current.TrainingGoals.WeeklyTrainingTarget+delta, 1, 99)
		util.LogError("set weekly target", m.prefs.SetTrainingGoal("weeklyTrainingTarget", target))
		return m, nil
	case rowAccuracyTarget:
		target := util.Clamp(current.TrainingGoals.AccuracyTarget+delta, 1, 100)
		util.LogError("set accuracy target", m.prefs.SetTrainingGoal("accuracyTarget", target))
		return m, nil
	}
	return m, nil
}

func (m MainModel) setNotification(key string, value bool) (tea.Model, tea.Cmd) {
	util.LogError("set notification", m.prefs.SetNotification(key, value))
	return m, nil
}

func (m MainModel) setPrivacy(key string, value bool) (tea.Model, tea.Cmd) {
	util.LogError("set privacy", m.prefs.SetPrivacy(key, value))
	return m, nil
}

// importSettingsFile reads a document from disk and imports it, detecting
// encrypted envelopes by their marker field.
func (m MainModel) importSettingsFile(path string) (tea.Model, tea.Cmd) {
	if path == "" {
		return m, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, m.pushToast(models.NotifyError, "Import failed", err.Error())
	}
	doc := string(raw)

	if strings.Contains(doc, `"encrypted"`) {
		if m.exportKey == "" {
			return m, m.pushToast(models.NotifyError, "Import failed", "Encrypted export but no export key is configured")
		}
		if err := m.prefs.ImportEncrypted(doc, m.exportKey); err != nil {
			return m, m.pushToast(models.NotifyError, "Import failed", err.Error())
		}
		return m, m.pushToast(models.NotifySuccess, "Settings imported", path)
	}

	if !m.prefs.Import(doc) {
		return m, m.pushToast(models.NotifyError, "Import failed", "Not a valid settings document")
	}
	return m, m.pushToast(models.NotifySuccess, "Settings imported", path)
}

func cycle(values []string, current string, delta int) string {
	for i, v := range values {
		if v == current {
			return values[(i+delta+len(values))%len(values)]
		}
	}
	return values[0]
}
