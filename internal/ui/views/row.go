package views

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"countrypick/internal/config"
	"countrypick/internal/countries"
	"countrypick/internal/filter"
)

// RowState is one dropdown entry
type RowState struct {
	Code string
	Name string
}

// RowRenderer handles rendering of dropdown rows
type RowRenderer struct {
	styles    *Styles
	flagStyle string
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles, flagStyle string) *RowRenderer {
	return &RowRenderer{
		styles:    styles,
		flagStyle: flagStyle,
	}
}

// FlagCell returns the flag column for code, padded to a fixed width
func (r *RowRenderer) FlagCell(code string) string {
	switch r.flagStyle {
	case config.FlagNone:
		return ""
	case config.FlagCode:
		return fmt.Sprintf("[%s] ", code)
	default:
		flag := countries.Flag(code)
		if flag == "" {
			flag = code
		}
		return runewidth.FillRight(flag, 3)
	}
}

// Render renders a single row. width is the space available for the name.
func (r *RowRenderer) Render(row RowState, query string, isCursor bool, width int) string {
	name := row.Name
	if width > 0 && runewidth.StringWidth(name) > width {
		name = runewidth.Truncate(name, width, "…")
	}

	text := r.styles.Text.Render(name)
	if start, end, ok := filter.MatchRange(name, query); ok {
		text = r.styles.Text.Render(name[:start]) +
			r.styles.Highlight.Render(name[start:end]) +
			r.styles.Text.Render(name[end:])
	}

	cursor := "  "
	style := r.styles.Row
	if isCursor {
		cursor = "> "
		style = r.styles.RowCursor
	}

	return style.Render(cursor + r.styles.Flag.Render(r.FlagCell(row.Code)) + text)
}
