// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for fortune-kind.
//
// The root command prints a fortune. Flags select short fortunes, an explicit
// length limit, a regular expression search, or the off-color corpus. The
// package also hosts the config and completion subcommands and is the only
// place that maps outcomes and errors to process exit codes.
package cmd
