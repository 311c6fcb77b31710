package cli

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"countrypick/internal/output"
	"countrypick/internal/picker"
	"countrypick/internal/ui"
)

func runPick(cmd *cobra.Command, opts *options) error {
	cfg := opts.cfg

	var uiOpts []ui.Option
	if initial, _ := cmd.Flags().GetString("initial"); initial != "" {
		uiOpts = append(uiOpts, ui.WithInitialCode(initial))
	}
	uiOpts = append(uiOpts, ui.WithOnSelect(func(sel picker.Selection) {
		log.Printf("Selection changed: %q (%s)", sel.Country, sel.Code)
	}))

	model := ui.New(cfg, uiOpts...)

	// The picker draws on stderr so stdout carries only the result
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	model.SetProgram(p)

	log.Printf("Starting picker...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}

	sel := model.Selection()
	if !model.Done() || sel.IsZero() {
		log.Printf("Picker closed without a selection")
		return exitWithCode(ExitNoSelection, "")
	}
	log.Printf("Picked %s (%s)", sel.Country, sel.Code)

	return printResult(cmd, opts, output.NewCountryResult(sel.Code, sel.Country))
}

func printResult(cmd *cobra.Command, opts *options, r *output.CountryResult) error {
	if opts.jsonOutput {
		out, err := r.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", r.Country, r.Code)
	return nil
}
