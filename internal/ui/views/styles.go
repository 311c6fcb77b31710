package views

import (
	"github.com/charmbracelet/lipgloss"

	"countrypick/internal/config"
)

// Styles contains all the style definitions for the picker
type Styles struct {
	Title       lipgloss.Style
	Container   lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Dropdown    lipgloss.Style
	Row         lipgloss.Style
	RowCursor   lipgloss.Style
	Text        lipgloss.Style
	Highlight   lipgloss.Style
	Flag        lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Selected    lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates the styles from the configured colours
func NewStyles(s config.StyleSettings, placeholderColor string) *Styles {
	border := lipgloss.Color(s.BorderColor)
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Container: lipgloss.NewStyle().Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(border).
			PaddingLeft(1),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(placeholderColor)),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border),
		Row:       lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		RowCursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Background(lipgloss.Color(s.SelectedColor)),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(s.TextColor)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(s.HighlightColor)).Bold(true),
		Flag:      lipgloss.NewStyle(),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Help:     lipgloss.NewStyle().Faint(true),
	}
}
