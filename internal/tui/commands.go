package tui

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/akyairhashvil/coachtrack/internal/analysis"
	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

type toastExpiredMsg struct{ id string }

type analysisDoneMsg struct {
	result *models.AnalysisResult
	err    error
}

type chartExportedMsg struct {
	path string
	err  error
}

type reportExportedMsg struct {
	path string
	err  error
}

// --- Commands ---

// pushToast enqueues a toast and schedules its auto-expiry.
func (m MainModel) pushToast(kind models.NotificationKind, title, message string) tea.Cmd {
	n := m.toasts.Push(kind, title, message)
	return expireToastCmd(n.ID)
}

func expireToastCmd(id string) tea.Cmd {
	return tea.Tick(config.NotificationTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// analyzeCmd uploads the video at path and reports the outcome. It runs
// off the update loop; the Analyzing flag set by the caller blocks
// resubmission until analysisDoneMsg arrives.
func (m MainModel) analyzeCmd(path string) tea.Cmd {
	analyzer := m.analyzer
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return analysisDoneMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), config.AnalyzeTimeout)
		defer cancel()

		result, err := analyzer.Analyze(ctx, path, f)
		return analysisDoneMsg{result: result, err: err}
	}
}

// isServiceErr distinguishes a non-2xx response from a transport failure.
func isServiceErr(err error) bool {
	return errors.Is(err, analysis.ErrService)
}
