// Package proptest provides property-based testing utilities with seeded
// random generation for reproducible tests.
//
// Property-based testing generates random inputs and verifies that certain
// invariants (properties) always hold. When a test fails, the seed is logged
// so the failure can be reproduced with PROPTEST_SEED.
//
// Basic usage:
//
//	func TestStripIsIdentity(t *testing.T) {
//	    proptest.QuickCheck(t, "strip without delimiters", func(g *proptest.Generator) bool {
//	        s := g.StringFrom(proptest.CharsetAlpha+" ", 20)
//	        return casing.Strip(s) == s
//	    })
//	}
package proptest

import (
	"math/rand"
	"time"
)

// Generator wraps a seeded random number generator for reproducible
// random value generation.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// New creates a new Generator with the given seed.
// If seed is 0, uses the current time as the seed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used by this generator.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a random int in [0, n).
// Panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

// IntRange returns a random int in [min, max].
func (g *Generator) IntRange(min, max int) int {
	if min > max {
		panic("proptest: IntRange min > max")
	}
	return min + g.rng.Intn(max-min+1)
}

// Bool returns a random boolean with 50% probability for each value.
func (g *Generator) Bool() bool {
	return g.rng.Intn(2) == 1
}

// OneOf returns a random element from the provided values.
// Panics if values is empty.
func OneOf[T any](g *Generator, values ...T) T {
	if len(values) == 0 {
		panic("proptest: OneOf called with no values")
	}
	return values[g.Intn(len(values))]
}

// Slice generates a slice of length [minLen, maxLen] using gen.
func Slice[T any](g *Generator, minLen, maxLen int, gen func(*Generator) T) []T {
	n := g.IntRange(minLen, maxLen)
	out := make([]T, n)
	for i := range out {
		out[i] = gen(g)
	}
	return out
}
