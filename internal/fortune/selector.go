// SPDX-License-Identifier: MPL-2.0

package fortune

import "fmt"

// Selector chooses one quote out of a file's quotes.
type Selector struct {
	rng         Rand
	shortLength int
}

// NewSelector creates a Selector. shortLength is the threshold of a single
// short flag; zero or less means DefaultShortLength. A nil rng uses the
// global generator.
func NewSelector(rng Rand, shortLength int) *Selector {
	if rng == nil {
		rng = globalRand{}
	}
	if shortLength <= 0 {
		shortLength = DefaultShortLength
	}
	return &Selector{rng: rng, shortLength: shortLength}
}

// Select picks one quote for c. Empty quotes are never selected.
//
// ModeRandom fails with ErrEmptyQuoteSet when no quote is available;
// ModeMaxLength and ModeMaxBytes fail with ErrNoMatchingQuote when no quote
// fits the bound. ModeHumorousExit and ModeSearch are not selections and
// fail with ErrInvalidCriterion.
func (s *Selector) Select(quotes []string, c Criterion) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var limit int
	switch c.Mode {
	case ModeRandom:
		candidates := filter(quotes, func(q string) bool { return q != "" })
		if len(candidates) == 0 {
			return "", ErrEmptyQuoteSet
		}
		return candidates[s.rng.IntN(len(candidates))], nil
	case ModeMaxLength:
		limit = TargetLength(s.shortLength, c.N)
	case ModeMaxBytes:
		limit = c.N
	default:
		return "", fmt.Errorf("%w: %s is not a quote selection", ErrInvalidCriterion, c.Mode)
	}

	candidates := filter(quotes, func(q string) bool { return q != "" && len(q) <= limit })
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: limit %d bytes", ErrNoMatchingQuote, limit)
	}
	return candidates[s.rng.IntN(len(candidates))], nil
}

// ShortLength returns the threshold of a single short flag.
func (s *Selector) ShortLength() int {
	return s.shortLength
}

func filter(quotes []string, keep func(string) bool) []string {
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
