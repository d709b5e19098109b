// SPDX-License-Identifier: MPL-2.0

package fortune

import "fmt"

const (
	// ModeRandom selects any quote uniformly.
	ModeRandom Mode = iota
	// ModeMaxLength selects among quotes within a halving length threshold.
	ModeMaxLength
	// ModeMaxBytes selects among quotes within an explicit byte limit.
	ModeMaxBytes
	// ModeHumorousExit short-circuits selection with HumorousMessage.
	ModeHumorousExit
	// ModeSearch returns every quote matching a pattern.
	ModeSearch
)

const (
	// DefaultShortLength is the length threshold of a single -s.
	DefaultShortLength = 150

	// HumorousThreshold is the short count at which selection gives up on
	// the user and answers with HumorousMessage.
	HumorousThreshold = 255

	// HumorousMessage is printed for ModeHumorousExit.
	HumorousMessage = "WE GET IT, YOU WANT A SHORT FORTUNE"
)

type (
	// Mode is the kind of selection to perform.
	Mode int

	// Criterion describes one selection request.
	Criterion struct {
		Mode Mode
		// N is the short count for ModeMaxLength and the byte limit for ModeMaxBytes.
		N int
		// Pattern is the regular expression for ModeSearch.
		Pattern string
	}
)

// Random returns a criterion selecting any quote.
func Random() Criterion { return Criterion{Mode: ModeRandom} }

// MaxLength returns a criterion for the n-th halving of the short threshold.
func MaxLength(n int) Criterion { return Criterion{Mode: ModeMaxLength, N: n} }

// MaxBytes returns a criterion selecting quotes of at most limit bytes.
func MaxBytes(limit int) Criterion { return Criterion{Mode: ModeMaxBytes, N: limit} }

// HumorousExit returns the sentinel criterion.
func HumorousExit() Criterion { return Criterion{Mode: ModeHumorousExit} }

// Search returns a criterion matching quotes against pattern.
func Search(pattern string) Criterion { return Criterion{Mode: ModeSearch, Pattern: pattern} }

// FromShortCount maps the number of short flags to a criterion:
// 0 is Random, 1..254 is MaxLength and 255 or more is HumorousExit.
func FromShortCount(count int) Criterion {
	switch {
	case count <= 0:
		return Random()
	case count >= HumorousThreshold:
		return HumorousExit()
	default:
		return MaxLength(count)
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeMaxLength:
		return "max-length"
	case ModeMaxBytes:
		return "max-bytes"
	case ModeHumorousExit:
		return "humorous-exit"
	case ModeSearch:
		return "search"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Validate reports whether the criterion can be evaluated.
func (c Criterion) Validate() error {
	switch c.Mode {
	case ModeRandom, ModeHumorousExit, ModeSearch:
		return nil
	case ModeMaxLength:
		if c.N < 1 {
			return fmt.Errorf("%w: short count must be at least 1, got %d", ErrInvalidCriterion, c.N)
		}
		return nil
	case ModeMaxBytes:
		if c.N < 1 {
			return fmt.Errorf("%w: length limit must be at least 1, got %d", ErrInvalidCriterion, c.N)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %s", ErrInvalidCriterion, c.Mode)
	}
}

// TargetLength returns floor(base / 2^(n-1)), clamped to at least 1.
// A base of zero or less uses DefaultShortLength.
func TargetLength(base, n int) int {
	if base <= 0 {
		base = DefaultShortLength
	}
	target := base
	for i := 1; i < n && target > 0; i++ {
		target /= 2
	}
	return max(target, 1)
}
