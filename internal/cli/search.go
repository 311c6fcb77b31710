package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"countrypick/internal/countries"
	"countrypick/internal/filter"
	"countrypick/internal/output"
)

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Print the countries whose names contain QUERY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := filter.New(countries.Default(), filter.WithCache(opts.cfg.Filter.CacheSize))
			return printCodes(cmd, opts, engine.Filter(args[0]))
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCodes(cmd, opts, countries.Codes())
		},
	}
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup CODE|NAME",
		Short: "Resolve a country code to its name or a name to its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := strings.TrimSpace(args[0])
			if arg == "" {
				return exitWithCode(ExitInvalidInput, "Error: empty lookup")
			}

			if name := countries.NameOf(arg); name != "" {
				return printResult(cmd, opts, output.NewCountryResult(strings.ToUpper(arg), name))
			}
			if code := countries.CodeOf(arg); code != "" {
				return printResult(cmd, opts, output.NewCountryResult(code, countries.NameOf(code)))
			}
			return exitWithCode(ExitNotFound, "Error: no country matches %q", arg)
		},
	}
}

func printCodes(cmd *cobra.Command, opts *options, codes []string) error {
	list := &output.ListResult{}
	for _, code := range codes {
		name := countries.NameOf(code)
		if name == "" {
			continue
		}
		list.Results = append(list.Results, output.NewCountryResult(code, name))
	}

	if opts.jsonOutput {
		out, err := list.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if len(list.Results) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), list.FormatText())
	}
	return nil
}
