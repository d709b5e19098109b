// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// CorpusKind selects the fortune directory.
	CorpusKind CorpusSet = "kind"
	// CorpusUnkind selects the off-color fortune directory.
	CorpusUnkind CorpusSet = "unkind"
	// CorpusAll selects both directories.
	CorpusAll CorpusSet = "all"

	// DefaultFortuneDir is the fortune directory when none is configured,
	// relative to the working directory.
	DefaultFortuneDir CorpusDirPath = "fortunes"
	// DefaultFortuneOffDir is the off-color fortune directory when none is configured.
	DefaultFortuneOffDir CorpusDirPath = "fortunes_off"
	// DefaultShortLength is the length threshold of a single -s flag.
	DefaultShortLength = 150
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidCorpusDirPath is returned when a corpus directory is empty or whitespace-only.
	ErrInvalidCorpusDirPath = errors.New("invalid corpus directory path")
	// ErrInvalidShortLength is returned when short_length is below 1.
	ErrInvalidShortLength = errors.New("invalid short length")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// CorpusDirPath is a filesystem path to a directory of fortune files.
	CorpusDirPath string

	// InvalidCorpusDirPathError is returned when a CorpusDirPath is empty or
	// whitespace-only. It wraps ErrInvalidCorpusDirPath for errors.Is().
	InvalidCorpusDirPathError struct {
		Field string
		Value CorpusDirPath
	}

	// CorpusSet names which corpus directories a run reads.
	CorpusSet string

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// FortuneDir is the directory of kind fortunes (env: FORTUNE_DIR).
		FortuneDir CorpusDirPath `json:"fortune_dir" mapstructure:"fortune_dir"`
		// FortuneOffDir is the directory of off-color fortunes (env: FORTUNE_OFF_DIR).
		FortuneOffDir CorpusDirPath `json:"fortune_off_dir" mapstructure:"fortune_off_dir"`
		// ShortLength is the length threshold of a single -s flag.
		ShortLength int `json:"short_length" mapstructure:"short_length"`
		// Weighted picks fortune files proportionally to their size.
		Weighted bool `json:"weighted" mapstructure:"weighted"`
		// Search configures --find
		Search SearchConfig `json:"search" mapstructure:"search"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// SearchConfig configures pattern search.
	SearchConfig struct {
		// IgnoreCase makes searches case-insensitive by default
		IgnoreCase bool `json:"ignore_case" mapstructure:"ignore_case"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		FortuneDir:    DefaultFortuneDir,
		FortuneOffDir: DefaultFortuneOffDir,
		ShortLength:   DefaultShortLength,
		Weighted:      true,
		Search: SearchConfig{
			IgnoreCase: false,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// CorpusDirs returns the directories read for set, in search order.
// An unrecognized set falls back to CorpusKind.
func (c Config) CorpusDirs(set CorpusSet) []string {
	switch set {
	case CorpusUnkind:
		return []string{string(c.FortuneOffDir)}
	case CorpusAll:
		return []string{string(c.FortuneDir), string(c.FortuneOffDir)}
	default:
		return []string{string(c.FortuneDir)}
	}
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.FortuneDir.isValid("fortune_dir"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.FortuneOffDir.isValid("fortune_off_dir"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.ShortLength < 1 {
		errs = append(errs, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidShortLength, c.ShortLength))
	}
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the CorpusDirPath.
func (p CorpusDirPath) String() string { return string(p) }

func (p CorpusDirPath) isValid(field string) (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidCorpusDirPathError{Field: field, Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCorpusDirPathError.
func (e *InvalidCorpusDirPathError) Error() string {
	return fmt.Sprintf("invalid %s %q: must not be empty", e.Field, e.Value)
}

// Unwrap returns ErrInvalidCorpusDirPath for errors.Is() compatibility.
func (e *InvalidCorpusDirPathError) Unwrap() error { return ErrInvalidCorpusDirPath }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}
