// SPDX-License-Identifier: MPL-2.0

package fortune

import (
	"errors"
	"testing"
)

func TestTargetLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, n, want int
	}{
		{150, 1, 150},
		{150, 2, 75},
		{150, 3, 37},
		{150, 4, 18},
		{150, 5, 9},
		{150, 6, 4},
		{150, 7, 2},
		{150, 8, 1},
		{150, 9, 1},
		{150, 254, 1},
		{0, 1, DefaultShortLength},
		{-3, 2, DefaultShortLength / 2},
		{1000, 3, 250},
	}

	for _, tt := range tests {
		if got := TargetLength(tt.base, tt.n); got != tt.want {
			t.Errorf("TargetLength(%d, %d) = %d, want %d", tt.base, tt.n, got, tt.want)
		}
	}
}

func TestFromShortCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  Criterion
	}{
		{0, Random()},
		{1, MaxLength(1)},
		{7, MaxLength(7)},
		{254, MaxLength(254)},
		{255, HumorousExit()},
		{1000, HumorousExit()},
	}

	for _, tt := range tests {
		if got := FromShortCount(tt.count); got != tt.want {
			t.Errorf("FromShortCount(%d) = %+v, want %+v", tt.count, got, tt.want)
		}
	}
}

func TestCriterion_Validate(t *testing.T) {
	t.Parallel()

	valid := []Criterion{Random(), MaxLength(1), MaxBytes(1), HumorousExit(), Search(""), Search("a+")}
	for _, c := range valid {
		if err := c.Validate(); err != nil {
			t.Errorf("%+v should be valid, got: %v", c, err)
		}
	}

	invalid := []Criterion{MaxLength(0), MaxLength(-1), MaxBytes(0), {Mode: Mode(42)}}
	for _, c := range invalid {
		if err := c.Validate(); !errors.Is(err, ErrInvalidCriterion) {
			t.Errorf("%+v should wrap ErrInvalidCriterion, got: %v", c, err)
		}
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	if got := ModeMaxLength.String(); got != "max-length" {
		t.Errorf("ModeMaxLength.String() = %q", got)
	}
	if got := Mode(99).String(); got != "Mode(99)" {
		t.Errorf("Mode(99).String() = %q", got)
	}
}
