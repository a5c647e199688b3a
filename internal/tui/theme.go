package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Message   lipgloss.Style
	Label     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Inactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                             // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true), // White
		Inactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),            // Purple
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
	"mono": {
		Name:      "Mono",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("250"),
		Header:    lipgloss.NewStyle().Bold(true),
		Active:    lipgloss.NewStyle().Bold(true),
		Inactive:  lipgloss.NewStyle().Faint(true),
		Message:   lipgloss.NewStyle().Underline(true),
		Label:     lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Reverse(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

// ThemeNames returns the theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nextTheme returns the key following current, wrapping around.
func nextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
