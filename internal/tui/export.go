package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func exportsDir() (string, error) {
	dir := filepath.Join(util.ReportsDir(config.AppName), "exports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// exportSettingsFile writes the current settings document to the exports
// directory, sealed when an export key is configured.
func (m MainModel) exportSettingsFile() (tea.Model, tea.Cmd) {
	dir, err := exportsDir()
	if err != nil {
		return m, m.pushToast(models.NotifyError, "Export failed", err.Error())
	}

	doc := m.prefs.Export()
	if m.exportKey != "" {
		doc, err = m.prefs.ExportEncrypted(m.exportKey)
		if err != nil {
			return m, m.pushToast(models.NotifyError, "Export failed", err.Error())
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("settings_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		return m, m.pushToast(models.NotifyError, "Export failed", err.Error())
	}
	return m, m.pushToast(models.NotifySuccess, "Settings exported", path)
}
