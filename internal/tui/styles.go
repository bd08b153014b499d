package tui

import "github.com/charmbracelet/lipgloss"

// Victorian palette: parchment, ink, oxblood and brass.
var (
	Parchment = lipgloss.Color("#f3e9d2")
	Ink       = lipgloss.Color("#2b2118")
	Oxblood   = lipgloss.Color("#7b2d26")
	Brass     = lipgloss.Color("#b08d57")
	Faded     = lipgloss.Color("#8a7f6d")
	Moss      = lipgloss.Color("#4d6b3c")
)

// Styles holds every style the views use.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Card      lipgloss.Style
	Heading   lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Flash     lipgloss.Style
	Cursor    lipgloss.Style
	Vocab     lipgloss.Style
	Grammar   lipgloss.Style
	Selected  lipgloss.Style
	Finis     lipgloss.Style
	Flashcard lipgloss.Style
	Flipped   lipgloss.Style
	Dialog    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Oxblood),
		Subtitle:  lipgloss.NewStyle().Italic(true).Foreground(Faded),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(Faded),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(Parchment).Background(Oxblood),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Brass).Padding(0, 1),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(Ink).Underline(true),
		Label:     lipgloss.NewStyle().Bold(true).Foreground(Brass),
		Muted:     lipgloss.NewStyle().Foreground(Faded),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(Oxblood),
		Flash:     lipgloss.NewStyle().Foreground(Moss),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(Oxblood),
		Vocab:     lipgloss.NewStyle().Foreground(Ink).Background(Brass),
		Grammar:   lipgloss.NewStyle().Underline(true).Foreground(Oxblood),
		Selected:  lipgloss.NewStyle().Reverse(true).Bold(true),
		Finis:     lipgloss.NewStyle().Italic(true).Foreground(Faded),
		Flashcard: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Brass).Padding(1, 2).Width(28).Align(lipgloss.Center),
		Flipped:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Oxblood).Padding(1, 2).Width(28).Align(lipgloss.Center),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(Oxblood).Padding(1, 2),
	}
}
