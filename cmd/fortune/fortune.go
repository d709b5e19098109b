// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fortune-kind/fortune-kind/internal/config"
	"github.com/fortune-kind/fortune-kind/internal/fortune"
)

// runFortune loads configuration, runs one selection and renders the outcome.
func runFortune(cmd *cobra.Command, app *App, opts *rootOptions) error {
	ctx := cmd.Context()

	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: opts.configPath})
	if err != nil {
		return app.renderConfigError(err, opts.verbose)
	}

	verbose := opts.verbose || cfg.UI.Verbose
	applyColorScheme(cfg.UI.ColorScheme)
	logger := newLogger(app.stderr, verbose)

	set := corpusSet(opts)
	dirs := cfg.CorpusDirs(set)
	c := criterionFromFlags(cmd, opts)
	logger.Debug("running fortune", "mode", c.Mode, "corpus", set, "dirs", dirs)

	engine := app.Engines(fortune.Options{
		Dirs:        dirs,
		ShortLength: cfg.ShortLength,
		Weighted:    cfg.Weighted && !opts.uniform,
		IgnoreCase:  opts.ignoreCase || cfg.Search.IgnoreCase,
		Logger:      logger,
	})

	outcome, err := engine.Run(ctx, c)
	if err != nil {
		return app.renderRunError(err, verbose, glamourStyle(cfg.UI.ColorScheme))
	}

	if outcome.Source != "" {
		logger.Debug("selected fortune", "file", outcome.Source)
	}
	return renderOutcome(app.stdout, outcome)
}

// criterionFromFlags maps the selection flags to a criterion. Search wins over
// the length limits, then an explicit --length, then the short count.
func criterionFromFlags(cmd *cobra.Command, opts *rootOptions) fortune.Criterion {
	flags := cmd.Flags()
	switch {
	case flags.Changed("find"):
		return fortune.Search(opts.find)
	case flags.Changed("length"):
		return fortune.MaxBytes(opts.length)
	default:
		return fortune.FromShortCount(opts.short)
	}
}

func corpusSet(opts *rootOptions) config.CorpusSet {
	switch {
	case opts.all:
		return config.CorpusAll
	case opts.unkind:
		return config.CorpusUnkind
	default:
		return config.CorpusKind
	}
}
