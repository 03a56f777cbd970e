package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/coachtrack/internal/config"
	"github.com/akyairhashvil/coachtrack/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderShell composes sidebar, header, content, and toasts into the
// final frame.
func (m MainModel) renderShell(content string) string {
	header := m.renderHeader()
	body := content
	if !m.compactMode() {
		sidebar := m.renderSidebar()
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
	}

	sections := []string{header, body}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.renderFooter())

	return CurrentTheme.Base.Render(strings.Join(sections, "\n"))
}

func (m MainModel) compactMode() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m MainModel) renderHeader() string {
	tab := m.activeTab()
	title := CurrentTheme.Header.Render("coachtrack")
	crumb := CurrentTheme.Title.Render(tab.Label) + "  " + CurrentTheme.Dim.Render(tab.Blurb)
	return title + "  " + crumb
}

func (m MainModel) renderSidebar() string {
	var b strings.Builder
	for _, t := range viewTabs {
		label := t.Key + " " + t.Label
		if m.sidebarCollapsed {
			label = t.Key
		}
		if t.ID == m.active {
			b.WriteString(CurrentTheme.ActiveTab.Render(" " + label + " "))
		} else {
			b.WriteString(CurrentTheme.Dim.Render(" " + label + " "))
		}
		b.WriteString("\n")
	}
	return CurrentTheme.Sidebar.Render(strings.TrimRight(b.String(), "\n"))
}

func (m MainModel) renderToasts() string {
	active := m.toasts.Active()
	if len(active) == 0 {
		return ""
	}
	if len(active) > config.MaxVisibleToasts {
		active = active[:config.MaxVisibleToasts]
	}
	var rendered []string
	for _, n := range active {
		style := CurrentTheme.Toast
		prefix := "•"
		switch n.Kind {
		case models.NotifySuccess:
			prefix = "✓"
		case models.NotifyError:
			prefix = "✗"
		}
		line := fmt.Sprintf("%s %s · %s", prefix, n.Title, n.Message)
		rendered = append(rendered, style.Render(truncate(line, 70)))
	}
	return strings.Join(rendered, "\n")
}

func (m MainModel) renderFooter() string {
	hints := "1-7 views · tab cycle · b sidebar · q quit"
	switch m.active {
	case ViewUpload:
		hints = "u choose file · a analyze · " + hints
	case ViewCalendar:
		hints = "c complete · x missed · n new · " + hints
	case ViewStatistics:
		hints = "g chart · p pdf report · " + hints
	case ViewProfile:
		hints = "e edit field · " + hints
	case ViewSettings:
		hints = "enter toggle · ←/→ adjust · " + hints
	}
	return CurrentTheme.Dim.Render(hints)
}

// truncate shortens a string to the given display width, ANSI-aware.
func truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// statCard renders one labeled metric in a bordered card.
func statCard(label, value string) string {
	inner := CurrentTheme.Title.Render(value) + "\n" + CurrentTheme.Dim.Render(label)
	return CurrentTheme.Card.Render(inner)
}

// meter renders a labeled percentage bar.
func (m MainModel) meter(label string, value, max int) string {
	if max <= 0 {
		max = 1
	}
	ratio := float64(value) / float64(max)
	if ratio > 1 {
		ratio = 1
	}
	return fmt.Sprintf("%-14s %s %3d", label, m.goalBar.ViewAs(ratio), value)
}
