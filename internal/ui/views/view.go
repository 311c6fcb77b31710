package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"countrypick/internal/config"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Input        string // rendered text input
	Query        string
	Open         bool
	Rows         []RowState
	Cursor       int // index into Rows
	Offset       int // first row shown
	MaxRows      int
	Total        int // size of the whole table
	SelectedCode string
	SelectedName string
	HelpView     string
	ReadyMarker  bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	rowRender *RowRenderer
}

// NewRenderer creates a renderer from the UI and style settings
func NewRenderer(cfg *config.Config) *Renderer {
	styles := NewStyles(cfg.Styles, cfg.UISettings.PlaceholderColor)
	return &Renderer{
		styles:    styles,
		rowRender: NewRowRenderer(styles, cfg.UISettings.FlagStyle),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	if state.ReadyMarker {
		content.WriteString("__READY__\n")
	}

	content.WriteString(r.styles.Title.Render("countrypick"))
	content.WriteString("\n")

	content.WriteString(r.renderInput(state))
	content.WriteString("\n")

	if state.Open {
		content.WriteString(r.renderDropdown(state))
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatus(state))

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Container.Render(content.String())
}

func (r *Renderer) renderInput(state ViewState) string {
	line := state.Input
	if state.SelectedCode != "" {
		line = r.rowRender.FlagCell(state.SelectedCode) + line
	}
	style := r.styles.Input
	if w := r.contentWidth(state); w > 0 {
		style = style.Width(w)
	}
	return style.Render(line)
}

func (r *Renderer) renderDropdown(state ViewState) string {
	width := r.contentWidth(state)

	if len(state.Rows) == 0 {
		return r.styles.Dropdown.Render(r.styles.Dim.Render(" No matching countries "))
	}

	end := state.Offset + state.MaxRows
	if state.MaxRows <= 0 || end > len(state.Rows) {
		end = len(state.Rows)
	}

	nameWidth := 0
	if width > 0 {
		nameWidth = width - 4 - lipgloss.Width(r.rowRender.FlagCell("XX")) - 2
	}

	lines := make([]string, 0, end-state.Offset+1)
	for i := state.Offset; i < end; i++ {
		lines = append(lines, r.rowRender.Render(state.Rows[i], state.Query, i == state.Cursor, nameWidth))
	}
	if state.Offset > 0 || end < len(state.Rows) {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("  %d-%d of %d", state.Offset+1, end, len(state.Rows))))
	}

	style := r.styles.Dropdown
	if width > 0 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.SelectedCode != "" {
		return r.styles.Status.Render("Selected:") + " " +
			r.styles.Selected.Render(fmt.Sprintf("%s (%s)", state.SelectedName, state.SelectedCode))
	}
	if state.Query != "" {
		return r.styles.Status.Render(fmt.Sprintf("%d of %d countries match %q", len(state.Rows), state.Total, state.Query))
	}
	return r.styles.Status.Render(fmt.Sprintf("%d countries", state.Total))
}

// contentWidth is the usable width inside the container padding, 0 if unknown
func (r *Renderer) contentWidth(state ViewState) int {
	if state.Width <= 0 {
		return 0
	}
	w := state.Width - 4
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
