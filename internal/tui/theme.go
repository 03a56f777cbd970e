package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles for one palette.
type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Dim       lipgloss.Style
	Focused   lipgloss.Style
	Highlight lipgloss.Style
	Good      lipgloss.Style
	Warn      lipgloss.Style
	Bad       lipgloss.Style
	Card      lipgloss.Style
	Sidebar   lipgloss.Style
	ActiveTab lipgloss.Style
	Toast     lipgloss.Style
	Input     lipgloss.Style
}

var Themes = map[string]Theme{
	"light": {
		Name:      "Light",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("34"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Good:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("172")).Bold(true),
		Bad:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("34")).Padding(0, 1),
		Sidebar:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("34")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("34")).Bold(true),
		Toast:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("172")).Padding(0, 1),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("34")).Padding(0, 1).Width(50),
	},
	"dark": {
		Name:      "Dark",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("42"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Good:      lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Bad:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1),
		Sidebar:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(lipgloss.Color("42")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("42")).Bold(true),
		Toast:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1).Width(50),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to light to avoid nil dereferences before settings load.
var CurrentTheme = Themes["light"]

// SetDarkMode is the preference store's theme hook: it flips the global
// palette. The "system" value is resolved by the caller before this runs.
func SetDarkMode(dark bool) {
	if dark {
		CurrentTheme = Themes["dark"]
		return
	}
	CurrentTheme = Themes["light"]
}
