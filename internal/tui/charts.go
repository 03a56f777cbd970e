package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// exportChartCmd renders the monthly accuracy/session trend to an HTML
// file and opens it in the browser.
func (m MainModel) exportChartCmd() tea.Cmd {
	monthly := m.data.MonthlyData()
	return func() tea.Msg {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
			charts.WithTitleOpts(opts.Title{
				Title:    "Training Trend",
				Subtitle: "Average accuracy and session count per month",
			}),
			charts.WithTooltipOpts(opts.Tooltip{
				Show:    opts.Bool(true),
				Trigger: "item",
			}),
		)

		months := make([]string, 0, len(monthly))
		accuracy := make([]opts.LineData, 0, len(monthly))
		sessions := make([]opts.LineData, 0, len(monthly))
		for _, d := range monthly {
			months = append(months, d.Month)
			accuracy = append(accuracy, opts.LineData{Value: d.Accuracy})
			sessions = append(sessions, opts.LineData{Value: d.Sessions})
		}

		line.SetXAxis(months)
		line.AddSeries("Accuracy %", accuracy)
		line.AddSeries("Sessions", sessions)
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

		dir, err := exportsDir()
		if err != nil {
			return chartExportedMsg{err: err}
		}
		path := filepath.Join(dir, fmt.Sprintf("trend_%s.html", time.Now().Format("20060102_150405")))
		f, err := os.Create(path)
		if err != nil {
			return chartExportedMsg{err: err}
		}
		if err := line.Render(f); err != nil {
			f.Close()
			return chartExportedMsg{err: err}
		}
		if err := f.Close(); err != nil {
			return chartExportedMsg{err: err}
		}

		if err := browser.OpenURL("file://" + path); err != nil {
			// The file is still on disk; report where it landed.
			return chartExportedMsg{path: path, err: nil}
		}
		return chartExportedMsg{path: path}
	}
}
