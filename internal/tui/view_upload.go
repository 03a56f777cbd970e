package tui

import (
	"fmt"
	"strings"
)

func (m MainModel) viewUpload() string {
	var b strings.Builder

	b.WriteString(CurrentTheme.Title.Render("Video Analysis"))
	b.WriteString("\n\n")

	if m.upload.Typing {
		b.WriteString("Video file path:\n")
		b.WriteString(CurrentTheme.Input.Render(m.upload.Input.View()))
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render("enter confirm · esc cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if m.upload.VideoPath == "" {
		b.WriteString(CurrentTheme.Dim.Render("No video selected. Press u to choose a file."))
		b.WriteString("\n")
	} else {
		b.WriteString("Selected: " + CurrentTheme.Highlight.Render(m.upload.VideoPath))
		b.WriteString("\n")
		if m.upload.Analyzing {
			b.WriteString(CurrentTheme.Warn.Render("Analyzing... this can take a while."))
			b.WriteString("\n")
		} else {
			b.WriteString(CurrentTheme.Dim.Render("Press a to run the AI analysis."))
			b.WriteString("\n")
		}
	}

	if m.upload.Result != nil {
		b.WriteString("\n")
		b.WriteString(m.renderAnalysisResult())
	}

	return b.String()
}

// renderAnalysisResult displays whatever the service returned; absent
// blocks simply render nothing.
func (m MainModel) renderAnalysisResult() string {
	r := m.upload.Result
	var b strings.Builder

	b.WriteString(CurrentTheme.Title.Render("Analysis Result"))
	b.WriteString("\n")

	if r.PoseAnalysis != nil {
		b.WriteString(fmt.Sprintf("Overall accuracy: %s\n",
			CurrentTheme.Good.Render(fmt.Sprintf("%.0f%%", r.PoseAnalysis.Accuracy))))
		if len(r.PoseAnalysis.Issues) > 0 {
			b.WriteString(CurrentTheme.Warn.Render("Issues"))
			b.WriteString("\n")
			for _, s := range r.PoseAnalysis.Issues {
				b.WriteString("  - " + s + "\n")
			}
		}
		if len(r.PoseAnalysis.Improvements) > 0 {
			b.WriteString(CurrentTheme.Highlight.Render("Improvements"))
			b.WriteString("\n")
			for _, s := range r.PoseAnalysis.Improvements {
				b.WriteString("  - " + s + "\n")
			}
		}
	}

	if r.MovementAnalysis != nil {
		b.WriteString(m.meter("Speed", int(r.MovementAnalysis.Speed), 100))
		b.WriteString("\n")
		b.WriteString(m.meter("Balance", int(r.MovementAnalysis.Balance), 100))
		b.WriteString("\n")
		b.WriteString(m.meter("Coordination", int(r.MovementAnalysis.Coordination), 100))
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString(CurrentTheme.Title.Render("Recommendations"))
		b.WriteString("\n")
		for _, s := range r.Recommendations {
			b.WriteString("  * " + s + "\n")
		}
	}

	return b.String()
}
