package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/store"
	"github.com/akyairhashvil/coachtrack/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.inInputMode() {
		return m.handleInputKey(msg)
	}

	key := msg.String()

	// Global navigation.
	switch key {
	case "q":
		return m, tea.Quit
	case "b":
		m.sidebarCollapsed = !m.sidebarCollapsed
		return m, nil
	case "tab":
		m.active = ViewID((int(m.active) + 1) % len(viewTabs))
		return m, nil
	case "shift+tab":
		m.active = ViewID((int(m.active) + len(viewTabs) - 1) % len(viewTabs))
		return m, nil
	}
	for _, t := range viewTabs {
		if key == t.Key {
			m.active = t.ID
			return m, nil
		}
	}

	switch m.active {
	case ViewUpload:
		return m.handleUploadKey(key)
	case ViewHistory:
		return m.handleHistoryKey(key)
	case ViewCalendar:
		return m.handleCalendarKey(key)
	case ViewStatistics:
		return m.handleStatisticsKey(key)
	case ViewProfile:
		return m.handleProfileKey(key)
	case ViewSettings:
		return m.handleSettingsKey(key)
	}
	return m, nil
}

// handleInputKey routes keys to whichever text input owns the keyboard.
func (m MainModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.upload.Typing:
		switch msg.Type {
		case tea.KeyEsc:
			m.upload.Typing = false
			return m, nil
		case tea.KeyEnter:
			path := strings.TrimSpace(m.upload.Input.Value())
			m.upload.Typing = false
			if path == "" {
				return m, nil
			}
			if _, err := os.Stat(path); err != nil {
				return m, m.pushToast(models.NotifyError, "File not found", path)
			}
			m.upload.VideoPath = path
			m.upload.Result = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.upload.Input, cmd = m.upload.Input.Update(msg)
		return m, cmd

	case m.profile.Editing:
		switch msg.Type {
		case tea.KeyEsc:
			m.profile.Editing = false
			return m, nil
		case tea.KeyEnter:
			return m.commitProfileEdit()
		}
		var cmd tea.Cmd
		m.profile.Input, cmd = m.profile.Input.Update(msg)
		return m, cmd

	case m.settingsTab.Importing:
		switch msg.Type {
		case tea.KeyEsc:
			m.settingsTab.Importing = false
			return m, nil
		case tea.KeyEnter:
			path := strings.TrimSpace(m.settingsTab.Input.Value())
			m.settingsTab.Importing = false
			return m.importSettingsFile(path)
		}
		var cmd tea.Cmd
		m.settingsTab.Input, cmd = m.settingsTab.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) handleUploadKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "u":
		m.upload.Typing = true
		m.upload.Input.SetValue(m.upload.VideoPath)
		m.upload.Input.Focus()
		return m, nil
	case "a":
		if m.upload.VideoPath == "" {
			return m, m.pushToast(models.NotifyInfo, "No video selected", "Press u to choose a file first")
		}
		if m.upload.Analyzing {
			return m, nil
		}
		m.upload.Analyzing = true
		return m, m.analyzeCmd(m.upload.VideoPath)
	}
	return m, nil
}

// handleAnalysisDone finishes the upload flow. The Analyzing guard is
// cleared on every path before anything else can fail.
func (m MainModel) handleAnalysisDone(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	m.upload.Analyzing = false

	if msg.err != nil {
		if isServiceErr(msg.err) {
			return m, m.pushToast(models.NotifyError, "Analysis failed", "Server error, please retry later")
		}
		util.LogError("analysis transport", msg.err)
		return m, m.pushToast(models.NotifyError, "Analysis failed", "Network error, check your connection")
	}

	m.upload.Result = msg.result
	m.data.ProcessVideoAnalysis(msg.result)

	return m, m.pushToast(models.NotifySuccess, "Analysis complete",
		fmt.Sprintf("Overall accuracy %d%%", store.AnalysisAccuracy(msg.result)))
}

func (m MainModel) handleHistoryKey(key string) (tea.Model, tea.Cmd) {
	records := m.data.TrainingRecords()
	switch key {
	case "up", "k":
		if m.historyIdx > 0 {
			m.historyIdx--
		}
	case "down", "j":
		if m.historyIdx < len(records)-1 {
			m.historyIdx++
		}
	}
	return m, nil
}

func (m MainModel) handleCalendarKey(key string) (tea.Model, tea.Cmd) {
	sessions := m.data.TrainingSessions()
	switch key {
	case "up", "k":
		if m.calendarIdx > 0 {
			m.calendarIdx--
		}
	case "down", "j":
		if m.calendarIdx < len(sessions)-1 {
			m.calendarIdx++
		}
	case "c":
		return m.setSessionStatus(models.SessionCompleted)
	case "x":
		return m.setSessionStatus(models.SessionMissed)
	case "n":
		m.data.AddTrainingSession(models.TrainingSession{
			Day:      "TBD",
			Date:     "TBD",
			Type:     models.TypeConditioning,
			Time:     "18:00",
			Duration: "60 min",
			Status:   models.SessionUpcoming,
		})
		return m, m.pushToast(models.NotifySuccess, "Session added", "New upcoming session scheduled")
	}
	return m, nil
}

func (m MainModel) setSessionStatus(status models.SessionStatus) (tea.Model, tea.Cmd) {
	sessions := m.data.TrainingSessions()
	if m.calendarIdx >= len(sessions) {
		return m, nil
	}
	target := sessions[m.calendarIdx]
	if err := m.data.UpdateSessionStatus(target.ID, status); err != nil {
		util.LogError("update session status", err)
		return m, m.pushToast(models.NotifyError, "Update failed", err.Error())
	}
	if status == models.SessionCompleted {
		return m, m.pushToast(models.NotifySuccess, "Session completed", target.Time+" "+string(target.Type))
	}
	return m, m.pushToast(models.NotifyInfo, "Session updated", string(status))
}

func (m MainModel) handleStatisticsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "g":
		return m, m.exportChartCmd()
	case "p":
		return m, m.exportReportCmd()
	}
	return m, nil
}
