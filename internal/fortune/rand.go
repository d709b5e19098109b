// SPDX-License-Identifier: MPL-2.0

package fortune

import "math/rand/v2"

// Rand is the source of randomness for selection. *rand.Rand satisfies it,
// which lets tests seed a deterministic generator.
type Rand interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// globalRand uses the auto-seeded top-level math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int       { return rand.IntN(n) }
func (globalRand) Int64N(n int64) int64 { return rand.Int64N(n) }
