// SPDX-License-Identifier: MPL-2.0

package fortune

import (
	"errors"
	"regexp/syntax"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fortune-kind/fortune-kind/internal/corpus"
)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	texts := []corpus.Text{
		{Path: "a", Body: "The cake is a lie.\n%\nNothing to see.\n%\nAnother lie, told twice.\n%\n"},
		{Path: "b", Body: "Honesty\n%\nlie detector"},
	}

	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		want       []string
	}{
		{"literal", "lie", false, []string{"The cake is a lie.", "Another lie, told twice.", "lie detector"}},
		{"regex", `^[A-Z]\w+ lie`, false, []string{"Another lie, told twice."}},
		{"absent", "xyzzy", false, []string{}},
		{"case sensitive", "honesty", false, []string{}},
		{"ignore case", "honesty", true, []string{"Honesty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := NewSearcher(tt.pattern, tt.ignoreCase)
			if err != nil {
				t.Fatalf("NewSearcher(%q) returned error: %v", tt.pattern, err)
			}
			if diff := cmp.Diff(tt.want, s.Search(texts)); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestSearcher_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewSearcher("(unclosed", false)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got: %v", err)
	}
	var synErr *syntax.Error
	if !errors.As(err, &synErr) {
		t.Errorf("expected the parser error to be preserved, got: %T", err)
	}
}

func TestSearcher_NormalizesUnicode(t *testing.T) {
	t.Parallel()

	// Composed pattern, decomposed corpus text.
	s, err := NewSearcher("caf\u00e9", false)
	if err != nil {
		t.Fatalf("NewSearcher() returned error: %v", err)
	}
	quote := "Meet me at the cafe\u0301."
	got := s.Search([]corpus.Text{{Body: quote}})
	if diff := cmp.Diff([]string{quote}, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}
