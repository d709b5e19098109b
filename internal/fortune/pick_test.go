// SPDX-License-Identifier: MPL-2.0

package fortune

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/fortune-kind/fortune-kind/internal/corpus"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPickWeighted_Empty(t *testing.T) {
	t.Parallel()

	if _, err := PickWeighted(newTestRand(), nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got: %v", err)
	}
	if _, err := PickUniform(newTestRand(), nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got: %v", err)
	}
}

func TestPickWeighted_AllZeroSizes(t *testing.T) {
	t.Parallel()

	files := []corpus.File{{Path: "a"}, {Path: "b"}, {Path: "c"}}
	rng := newTestRand()
	seen := map[string]bool{}
	for range 300 {
		f, err := PickWeighted(rng, files)
		if err != nil {
			t.Fatalf("PickWeighted() returned error: %v", err)
		}
		seen[f.Path] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected uniform fallback to reach every file, saw %v", seen)
	}
}

func TestPickWeighted_SkipsEmptyFiles(t *testing.T) {
	t.Parallel()

	files := []corpus.File{{Path: "empty", Size: 0}, {Path: "full", Size: 42}, {Path: "also-empty", Size: 0}}
	rng := newTestRand()
	for range 200 {
		f, err := PickWeighted(rng, files)
		if err != nil {
			t.Fatalf("PickWeighted() returned error: %v", err)
		}
		if f.Path != "full" {
			t.Fatalf("picked zero-sized file %q", f.Path)
		}
	}
}

func TestPickWeighted_ProportionalToSize(t *testing.T) {
	t.Parallel()

	files := []corpus.File{{Path: "small", Size: 10}, {Path: "large", Size: 90}}
	rng := newTestRand()

	const draws = 20000
	large := 0
	for range draws {
		f, err := PickWeighted(rng, files)
		if err != nil {
			t.Fatalf("PickWeighted() returned error: %v", err)
		}
		if f.Path == "large" {
			large++
		}
	}

	freq := float64(large) / draws
	if freq < 0.87 || freq > 0.93 {
		t.Errorf("large file picked with frequency %.3f, want about 0.90", freq)
	}
}

func TestPickUniform_IgnoresSize(t *testing.T) {
	t.Parallel()

	files := []corpus.File{{Path: "small", Size: 10}, {Path: "large", Size: 90}}
	rng := newTestRand()

	const draws = 20000
	large := 0
	for range draws {
		f, err := PickUniform(rng, files)
		if err != nil {
			t.Fatalf("PickUniform() returned error: %v", err)
		}
		if f.Path == "large" {
			large++
		}
	}

	freq := float64(large) / draws
	if freq < 0.45 || freq > 0.55 {
		t.Errorf("large file picked with frequency %.3f, want about 0.50", freq)
	}
}
