// Package tui implements the terminal shell and view layer: a
// single-selection tab model over the fixed view set, rendering from the
// injected stores. Views never mutate each other's state directly; all
// domain mutations go through store calls.
package tui

import (
	"github.com/akyairhashvil/coachtrack/internal/analysis"
	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/akyairhashvil/coachtrack/internal/settings"
	"github.com/akyairhashvil/coachtrack/internal/store"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID selects the active panel. Exactly one view is active at a time.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewUpload
	ViewHistory
	ViewCalendar
	ViewStatistics
	ViewProfile
	ViewSettings
)

type viewTab struct {
	ID    ViewID
	Key   string
	Label string
	Blurb string
}

var viewTabs = []viewTab{
	{ViewDashboard, "1", "Dashboard", "Training overview"},
	{ViewUpload, "2", "Video Analysis", "Upload & review"},
	{ViewHistory, "3", "History", "Logged activities"},
	{ViewCalendar, "4", "Calendar", "Scheduled sessions"},
	{ViewStatistics, "5", "Statistics", "Trends & skills"},
	{ViewProfile, "6", "Profile", "Personal details"},
	{ViewSettings, "7", "Settings", "Preferences"},
}

// UploadState is the transient state of the upload-and-analyze flow.
type UploadState struct {
	Input     textinput.Model
	Typing    bool
	VideoPath string
	Analyzing bool
	Result    *models.AnalysisResult
}

// ProfileState tracks in-place profile editing.
type ProfileState struct {
	Editing  bool
	FieldIdx int
	Input    textinput.Model
}

// SettingsState tracks the settings panel cursor and the import prompt.
type SettingsState struct {
	Cursor    int
	Importing bool
	Input     textinput.Model
}

// MainModel is the root bubbletea model: shell chrome plus the per-view
// transient state. Domain state lives in the injected stores only.
type MainModel struct {
	data     *store.Store
	prefs    *settings.Store
	toasts   *store.Queue
	analyzer analysis.Analyzer

	active           ViewID
	sidebarCollapsed bool
	width, height    int

	upload      UploadState
	profile     ProfileState
	settingsTab SettingsState
	historyIdx  int
	calendarIdx int

	goalBar progress.Model

	// exportKey, when set, seals settings exports with AES-GCM.
	exportKey string

	Message string
	err     error
}

// NewMainModel wires the shell to its collaborators. The stores are
// constructed once in main and shared by reference.
func NewMainModel(data *store.Store, prefs *settings.Store, toasts *store.Queue, analyzer analysis.Analyzer) MainModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/training.mp4"
	pathInput.CharLimit = config.MaxPathLength
	pathInput.Width = 50

	profileInput := textinput.New()
	profileInput.CharLimit = config.MaxProfileFieldLength
	profileInput.Width = 40

	importInput := textinput.New()
	importInput.Placeholder = "/path/to/settings.json"
	importInput.CharLimit = config.MaxPathLength
	importInput.Width = 50

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 24

	return MainModel{
		data:             data,
		prefs:            prefs,
		toasts:           toasts,
		analyzer:         analyzer,
		active:           ViewDashboard,
		sidebarCollapsed: true,
		upload:           UploadState{Input: pathInput},
		profile:          ProfileState{Input: profileInput},
		settingsTab:      SettingsState{Input: importInput},
		goalBar:          bar,
	}
}

// SetExportKey enables encrypted settings exports.
func (m *MainModel) SetExportKey(key string) {
	m.exportKey = key
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastExpiredMsg:
		// The timer fires even if the toast was dismissed manually;
		// Dismiss tolerates the absent id.
		m.toasts.Dismiss(msg.id)
		return m, nil

	case analysisDoneMsg:
		return m.handleAnalysisDone(msg)

	case chartExportedMsg:
		if msg.err != nil {
			return m, m.pushToast(models.NotifyError, "Chart export failed", msg.err.Error())
		}
		return m, m.pushToast(models.NotifySuccess, "Chart exported", msg.path)

	case reportExportedMsg:
		if msg.err != nil {
			return m, m.pushToast(models.NotifyError, "Report export failed", msg.err.Error())
		}
		return m, m.pushToast(models.NotifySuccess, "Report exported", msg.path)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m MainModel) View() string {
	if m.err != nil {
		return CurrentTheme.Bad.Render("Error: "+m.err.Error()) + "\n" + CurrentTheme.Dim.Render("Press ctrl+c to quit.")
	}

	content := ""
	switch m.active {
	case ViewDashboard:
		content = m.viewDashboard()
	case ViewUpload:
		content = m.viewUpload()
	case ViewHistory:
		content = m.viewHistory()
	case ViewCalendar:
		content = m.viewCalendar()
	case ViewStatistics:
		content = m.viewStatistics()
	case ViewProfile:
		content = m.viewProfile()
	case ViewSettings:
		content = m.viewSettings()
	}

	return m.renderShell(content)
}

// inInputMode reports whether a text input currently owns the keyboard.
func (m MainModel) inInputMode() bool {
	return m.upload.Typing || m.profile.Editing || m.settingsTab.Importing
}

func (m MainModel) activeTab() viewTab {
	for _, t := range viewTabs {
		if t.ID == m.active {
			return t
		}
	}
	return viewTabs[0]
}
