// SPDX-License-Identifier: MPL-2.0

package fortune

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/fortune-kind/fortune-kind/internal/corpus"
)

// Searcher matches quotes against a regular expression.
// A plain string is a valid expression of itself, so literal search needs no
// separate mode. Pattern and quotes are compared in NFC so composed and
// decomposed spellings of the same text match.
type Searcher struct {
	re *regexp.Regexp
}

// NewSearcher compiles pattern. It fails with ErrInvalidPattern when the
// pattern does not parse.
func NewSearcher(pattern string, ignoreCase bool) (*Searcher, error) {
	expr := norm.NFC.String(pattern)
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return &Searcher{re: re}, nil
}

// Match reports whether quote matches.
func (s *Searcher) Match(quote string) bool {
	return s.re.MatchString(norm.NFC.String(quote))
}

// Search returns every matching quote of every text, in order.
// The result is empty, not nil, when nothing matches.
func (s *Searcher) Search(texts []corpus.Text) []string {
	matches := []string{}
	for _, t := range texts {
		for _, q := range Split(t.Body) {
			if q == "" {
				continue
			}
			if s.Match(q) {
				matches = append(matches, q)
			}
		}
	}
	return matches
}
