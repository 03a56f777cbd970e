package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/coachtrack/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
)

func TestSettingsCursorBounds(t *testing.T) {
	m := setupTestModel(t)
	m.active = ViewSettings

	model, _ := m.Update(keyMsg("k"))
	m = model.(MainModel)
	if m.settingsTab.Cursor != 0 {
		t.Fatalf("cursor must not move above the first row")
	}

	for i := 0; i < settingsRowCount+5; i++ {
		model, _ = m.Update(keyMsg("j"))
		m = model.(MainModel)
	}
	if m.settingsTab.Cursor != settingsRowCount-1 {
		t.Fatalf("cursor must stop at the last row, got %d", m.settingsTab.Cursor)
	}
}

func TestSettingsThemeCycle(t *testing.T) {
	m := setupTestModel(t)
	m.active = ViewSettings
	m.settingsTab.Cursor = rowTheme

	model, _ := m.Update(keyMsg("l"))
	m = model.(MainModel)
	if got := m.prefs.Get().Theme; got != settings.ThemeDark {
		t.Fatalf("expected dark after one step from light, got %q", got)
	}

	model, _ = m.Update(keyMsg("h"))
	m = model.(MainModel)
	if got := m.prefs.Get().Theme; got != settings.ThemeLight {
		t.Fatalf("expected light after stepping back, got %q", got)
	}
}

func TestSettingsToggleReminder(t *testing.T) {
	m := setupTestModel(t)
	m.active = ViewSettings
	m.settingsTab.Cursor = rowTrainingReminder
	before := m.prefs.Get().Notifications.TrainingReminder

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(MainModel)

	if m.prefs.Get().Notifications.TrainingReminder == before {
		t.Fatalf("expected reminder toggled")
	}
}

func TestSettingsWeeklyTargetClamped(t *testing.T) {
	m := setupTestModel(t)
	m.active = ViewSettings
	m.settingsTab.Cursor = rowWeeklyTarget

	for i := 0; i < 150; i++ {
		model, _ := m.Update(keyMsg("l"))
		m = model.(MainModel)
	}
	if got := m.prefs.Get().TrainingGoals.WeeklyTrainingTarget; got != 99 {
		t.Fatalf("expected weekly target clamped at 99, got %d", got)
	}
}

func TestSettingsReset(t *testing.T) {
	m := setupTestModel(t)
	if err := m.prefs.SetLanguage("en"); err != nil {
		t.Fatalf("SetLanguage failed: %v", err)
	}
	m.active = ViewSettings
	m.settingsTab.Cursor = rowReset

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(MainModel)

	if got := m.prefs.Get().Language; got != "zh-CN" {
		t.Fatalf("expected defaults after reset, got language %q", got)
	}
}

func TestSettingsImportFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	doc := `{"theme": "dark", "language": "en"}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	m := setupTestModel(t)
	m.active = ViewSettings
	m.settingsTab.Cursor = rowImport

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(MainModel)
	if !m.settingsTab.Importing {
		t.Fatalf("expected import prompt to take the keyboard")
	}

	m.settingsTab.Input.SetValue(path)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(MainModel)

	if m.settingsTab.Importing {
		t.Fatalf("expected prompt closed after enter")
	}
	got := m.prefs.Get()
	if got.Theme != settings.ThemeDark || got.Language != "en" {
		t.Fatalf("imported values not applied: %+v", got)
	}
	// Fields absent from the document come from the defaults.
	if got.TrainingGoals.WeeklyTrainingTarget != 12 {
		t.Fatalf("expected default weekly target preserved, got %d", got.TrainingGoals.WeeklyTrainingTarget)
	}
}

func TestSettingsImportRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	m := setupTestModel(t)
	before := m.prefs.Get()
	model, _ := m.importSettingsFile(path)
	m = model.(MainModel)

	if m.prefs.Get() != before {
		t.Fatalf("invalid import must leave settings untouched")
	}
	if m.toasts.Active()[0].Kind != "error" {
		t.Fatalf("expected an error toast")
	}
}

func TestSettingsEncryptedImportNeedsKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"encrypted": true}`), 0o600); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	m := setupTestModel(t)
	model, _ := m.importSettingsFile(path)
	m = model.(MainModel)

	if m.toasts.Active()[0].Kind != "error" {
		t.Fatalf("expected an error toast without an export key")
	}
}
