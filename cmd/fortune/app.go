// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/fortune-kind/fortune-kind/internal/config"
	"github.com/fortune-kind/fortune-kind/internal/fortune"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: Cobra handlers receive an App reference and delegate through its
	// service interfaces (Config, Engines).
	App struct {
		Config  ConfigProvider
		Engines EngineFactory
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests supply fakes to isolate
	// the CLI from the filesystem and the random source.
	Dependencies struct {
		Config  ConfigProvider
		Engines EngineFactory
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// FortuneEngine runs one selection.
	FortuneEngine interface {
		Run(ctx context.Context, c fortune.Criterion) (fortune.Outcome, error)
	}

	// EngineFactory builds a FortuneEngine for a single invocation.
	EngineFactory func(opts fortune.Options) FortuneEngine
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Engines == nil {
		deps.Engines = defaultEngineFactory
	}

	return &App{
		Config:  deps.Config,
		Engines: deps.Engines,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
}

func defaultEngineFactory(opts fortune.Options) FortuneEngine {
	return fortune.New(opts)
}
