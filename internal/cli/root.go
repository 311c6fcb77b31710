// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"countrypick/internal/config"
	"countrypick/internal/logging"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitNoSelection  = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

func exitWithCode(code int, format string, args ...any) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}

// annotationTolerateConfig marks commands that run on defaults when the
// config file cannot be read, so a broken file can be rewritten.
const annotationTolerateConfig = "tolerate-config"

// options holds the flags and state shared by all commands.
type options struct {
	configPath string
	jsonOutput bool

	cfg    *config.Config
	closer io.Closer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "countrypick",
		Short: "Pick a country from a searchable list",
		Long: `countrypick opens an interactive, searchable country list in the terminal
and prints the country you pick.

Type to filter by name, move with the arrow keys, press enter to select
and enter again to confirm:
  countrypick
  countrypick --initial FR

Non-interactive lookups:
  countrypick search ind
  countrypick lookup IN`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Nothing may reach the terminal before the log file is set up
			log.SetOutput(io.Discard)
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				if cmd.Annotations[annotationTolerateConfig] == "" {
					return exitWithCode(ExitInvalidInput, "Error: %v", err)
				}
				cfg = config.DefaultConfig()
			}
			opts.cfg = cfg
			opts.closer = logging.Setup(opts.cfg.Log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.closer != nil {
				opts.closer.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default is the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	rootCmd.Flags().String("initial", "", "country code to pre-select")

	rootCmd.AddCommand(newSearchCmd(opts))
	rootCmd.AddCommand(newLookupCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits with the command's exit code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.msg != "" {
				fmt.Fprintln(os.Stderr, ee.msg)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitInvalidInput)
	}
}

// loadConfig loads the config at path. A missing file yields the defaults;
// a file that cannot be read or parsed is an error.
func loadConfig(path string) (*config.Config, error) {
	svc := config.NewConfigServiceAt(path)
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", svc.Path(), err)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "countrypick %s (commit %s, built %s)\n", Version, Commit, BuildTime)
		},
	}
}
