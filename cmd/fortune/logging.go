// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates the diagnostic logger. Diagnostics go to stderr so stdout
// carries nothing but fortunes.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "fortune",
		Level:           level,
		ReportTimestamp: verbose,
	})
}
