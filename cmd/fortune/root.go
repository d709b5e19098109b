// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/fortune-kind/fortune-kind/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions holds the parsed flag values of a single invocation.
type rootOptions struct {
	short      int
	length     int
	find       string
	ignoreCase bool
	all        bool
	unkind     bool
	uniform    bool
	verbose    bool
	configPath string
}

// newRootCommand creates the fortune-kind command tree bound to app.
func newRootCommand(app *App) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fortune-kind",
		Short: "A kinder way to get your fortune told",
		Long: TitleStyle.Render("fortune-kind") + SubtitleStyle.Render(" - A kinder way to get your fortune told") + `

fortune-kind prints a random quote from a directory of fortune files.
Quotes are separated by a line holding a single '%'. Larger files are
picked more often, so every quote has a similar chance of showing up.

` + SubtitleStyle.Render("Fortune directories:") + `
  FORTUNE_DIR       kind fortunes (default ./fortunes)
  FORTUNE_OFF_DIR   off-color fortunes, used by --unkind and --all

` + SubtitleStyle.Render("Examples:") + `
  fortune-kind              Print a random fortune
  fortune-kind -s           Print a fortune of 150 characters or fewer
  fortune-kind -ss          Each extra -s halves the limit
  fortune-kind -n 80        Print a fortune of at most 80 bytes
  fortune-kind -m 'linux'   Print every fortune matching a pattern
  fortune-kind config show  Show current configuration`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFortune(cmd, app, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.CountVarP(&opts.short, "short", "s", "print a short fortune; repeat to halve the length limit")
	flags.IntVarP(&opts.length, "length", "n", 0, "print a fortune of at most `N` bytes")
	flags.StringVarP(&opts.find, "find", "m", "", "print every fortune matching a regular expression `PATTERN`")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "ignore case when searching with --find")
	flags.BoolVarP(&opts.all, "all", "a", false, "read both kind and off-color fortunes")
	flags.BoolVarP(&opts.unkind, "unkind", "u", false, "read off-color fortunes only")
	flags.BoolVar(&opts.uniform, "uniform", false, "pick files uniformly instead of by size")

	rootCmd.MarkFlagsMutuallyExclusive("all", "unkind")
	rootCmd.MarkFlagsMutuallyExclusive("find", "short")
	rootCmd.MarkFlagsMutuallyExclusive("find", "length")
	rootCmd.MarkFlagsMutuallyExclusive("short", "length")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/fortune-kind/config.cue)")

	rootCmd.AddCommand(newConfigCommand(app, opts))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := newRootCommand(app)

	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// handleError prints errors that were not already rendered by a command.
func handleError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Rendered {
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, false))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method with verbose mode.
// Otherwise, it returns the standard error message.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
