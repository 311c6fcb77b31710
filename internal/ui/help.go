package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys keyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys keyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// renderHelpContent renders the full help text shown in the pager
func (r *HelpRenderer) renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("countrypick Help"))
	help.WriteString("\n")

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Searching", [][2]string{
			{"type", "Filter countries by name"},
			{"backspace", "Edit the search; clearing it closes the list"},
			{r.keys.Focus.Help().Key, "Focus the field and open the list"},
			{r.keys.Close.Help().Key, "Close the list, keep the text"},
		}},
		{"Navigation", [][2]string{
			{r.keys.Up.Help().Key, "Move up"},
			{r.keys.Down.Help().Key, "Move down"},
			{"pgup/pgdn", "Page up/down"},
		}},
		{"Selection", [][2]string{
			{r.keys.Select.Help().Key, "Select the highlighted country; press again to confirm"},
			{r.keys.Reset.Help().Key, "Clear the search and the selection"},
		}},
		{"Other", [][2]string{
			{r.keys.Help.Help().Key, "Show this help"},
			{r.keys.Quit.Help().Key, "Quit without confirming"},
		}},
	}

	for _, section := range sections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, row := range section.rows {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(row[0]), descStyle.Render(row[1])))
		}
	}

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Don't write the help back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
