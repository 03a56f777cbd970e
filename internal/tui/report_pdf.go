package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-pdf/fpdf"
)

// exportReportCmd writes the weekly training report as a PDF: the derived
// stats header, the records in the trailing window, and earned badges.
func (m MainModel) exportReportCmd() tea.Cmd {
	stats := m.data.DashboardStats()
	records := m.data.TrainingRecords()
	achievements := m.data.Achievements()
	goals := m.data.TrainingGoals()

	return func() tea.Msg {
		pdf := fpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(40, 10, fmt.Sprintf("Training Report: %s", time.Now().Format("2006-01-02")))
		pdf.Ln(12)

		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Weekly sessions: %d", stats.WeeklyTraining))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Average accuracy: %d%%", stats.AverageAccuracy))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Training hours: %.1f", stats.TrainingHours))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Plan completion: %d%%", stats.PlanCompletion))
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Recent Activities")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		if len(records) == 0 {
			pdf.Cell(0, 8, "  - No activities logged.")
			pdf.Ln(8)
		}
		shown := records
		if len(shown) > 20 {
			shown = shown[:20]
		}
		for _, r := range shown {
			line := fmt.Sprintf("%s  %-16s %-8s", r.Date, r.Type, r.Duration)
			if r.Accuracy > 0 {
				line += fmt.Sprintf("  %d%%", r.Accuracy)
			}
			pdf.Cell(0, 8, line)
			pdf.Ln(6)
		}

		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Goals")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Video analysis: %d/%d", goals.VideoAnalysis.Current, goals.VideoAnalysis.Target))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Strength: %d/%d", goals.StrengthTraining.Current, goals.StrengthTraining.Target))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Agility: %d/%d", goals.AgilityTraining.Current, goals.AgilityTraining.Target))
		pdf.Ln(10)

		if len(achievements) > 0 {
			pdf.SetFont("Arial", "B", 14)
			pdf.Cell(0, 10, "Achievements")
			pdf.Ln(8)
			pdf.SetFont("Arial", "", 12)
			for _, a := range achievements {
				pdf.Cell(0, 8, fmt.Sprintf("%s (%s)", a.Title, a.Date))
				pdf.Ln(6)
			}
		}

		dir, err := exportsDir()
		if err != nil {
			return reportExportedMsg{err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", time.Now().Format("20060102_150405")))
		if err := pdf.OutputFileAndClose(path); err != nil {
			return reportExportedMsg{err: err}
		}
		return reportExportedMsg{path: path}
	}
}
