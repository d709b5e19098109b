// SPDX-License-Identifier: MPL-2.0

package fortune

import "errors"

var (
	// ErrEmptyCorpus is returned when the corpus holds no files to pick from.
	ErrEmptyCorpus = errors.New("no fortune files found")
	// ErrEmptyQuoteSet is returned when a picked file holds no quotes.
	ErrEmptyQuoteSet = errors.New("no quotes found")
	// ErrNoMatchingQuote is returned when no quote satisfies a length bound.
	ErrNoMatchingQuote = errors.New("no quote short enough")
	// ErrInvalidPattern is returned when a search pattern is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid search pattern")
	// ErrInvalidCriterion is returned for criteria that cannot be evaluated.
	ErrInvalidCriterion = errors.New("invalid selection criterion")
)
