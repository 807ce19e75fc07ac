// Package dialog is the interactive command prompt: type a command line, see
// its output, recall earlier lines with the arrow keys.
package dialog

import "github.com/charmbracelet/lipgloss"

// Theme centralizes all styling for the dialog.
type Theme struct {
	Prompt lipgloss.Style
	Echo   lipgloss.Style
	OK     lipgloss.Style
	Error  lipgloss.Style
	Event  lipgloss.Style
	Title  lipgloss.Style
	Border lipgloss.Style
	Help   lipgloss.Style
}

func NewDefaultTheme() Theme {
	purple := lipgloss.Color("#874BFD")

	return Theme{
		Prompt: lipgloss.NewStyle().Foreground(purple).Bold(true),
		Echo:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		OK:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
		Event:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
