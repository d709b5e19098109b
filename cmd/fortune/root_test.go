// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/fang"
)

func fangStyles() fang.Styles {
	return fang.Styles{}
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q, want %q", got, "dev (built from source)")
		}
	})
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := &ExitError{Code: 3, Err: cause}
	if err.Error() != "cause" {
		t.Errorf("Error() = %q, want %q", err.Error(), "cause")
	}
	if !errors.Is(err, cause) {
		t.Error("ExitError should unwrap to its cause")
	}

	bare := &ExitError{Code: 2}
	if bare.Error() != "exit status 2" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "exit status 2")
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCommand(newTestHarness(t).app)
	for _, name := range []string{"config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"short", "length", "find", "ignore-case", "all", "unkind", "uniform"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("flag --%s not registered", flag)
		}
	}
	for _, flag := range []string{"verbose", "config"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s not registered", flag)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	t.Parallel()

	root := newRootCommand(newTestHarness(t).app)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion bash error = %v", err)
	}
	if out.Len() == 0 {
		t.Error("completion bash produced no output")
	}
}
