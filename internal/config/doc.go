// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is resolved once per invocation from, in increasing priority:
// built-in defaults, a config.cue file (~/.config/fortune-kind/config.cue or XDG
// equivalent on Linux, ~/Library/Application Support/fortune-kind/config.cue on
// macOS, %APPDATA%\fortune-kind\config.cue on Windows, or ./config.cue), and the
// FORTUNE_DIR, FORTUNE_OFF_DIR, FORTUNE_SHORT_LENGTH and FORTUNE_WEIGHTED
// environment variables.
//
// Configuration files are validated against an embedded CUE schema
// (config_schema.cue) so typos and wrong types fail with a path-qualified message.
package config
