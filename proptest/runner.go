package proptest

import (
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"
)

// Config controls property test behavior.
type Config struct {
	// NumTrials is the number of test iterations. Default: 100.
	NumTrials int

	// Seed is the random seed for reproducibility. 0 means time-based.
	Seed int64
}

// DefaultConfig returns sensible defaults for property testing.
func DefaultConfig() Config {
	return Config{NumTrials: 100}
}

// effectiveSeed returns the seed to use, checking PROPTEST_SEED first.
func effectiveSeed(cfg Config) int64 {
	if envSeed := os.Getenv("PROPTEST_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// Check runs a property multiple times with different random inputs.
// On failure, it logs the seed for reproducibility.
func Check(t *testing.T, name string, cfg Config, prop func(g *Generator) bool) {
	t.Helper()

	if cfg.NumTrials <= 0 {
		cfg.NumTrials = 100
	}

	seed := effectiveSeed(cfg)
	g := New(seed)

	for i := 0; i < cfg.NumTrials; i++ {
		if !prop(g) {
			t.Errorf("proptest %q failed on trial %d (seed=%d, use PROPTEST_SEED=%d to reproduce)",
				name, i+1, seed, seed)
			return
		}
	}
}

// QuickCheck runs a property with default configuration (100 trials).
func QuickCheck(t *testing.T, name string, prop func(g *Generator) bool) {
	t.Helper()
	Check(t, name, DefaultConfig(), prop)
}

// ForAll runs a property that generates a value and returns both the value
// and whether the property holds. On failure, it logs the generated value.
//
//	proptest.ForAll(t, "labelize has no spaces", 100, func(g *proptest.Generator) (string, bool) {
//	    s := g.DashCase(4)
//	    return s, !strings.Contains(casing.Labelize(s), " ")
//	})
func ForAll[T any](t *testing.T, name string, numTrials int, prop func(g *Generator) (T, bool)) {
	t.Helper()

	seed := effectiveSeed(Config{})
	g := New(seed)

	for i := 0; i < numTrials; i++ {
		val, ok := prop(g)
		if !ok {
			t.Errorf("proptest %q failed on trial %d with value %+v (seed=%d, use PROPTEST_SEED=%d to reproduce)",
				name, i+1, val, seed, seed)
			return
		}
	}
}

// RunSeeds runs a property with multiple specific seeds.
// Useful for regression testing with known problematic seeds.
func RunSeeds(t *testing.T, name string, seeds []int64, prop func(g *Generator) bool) {
	t.Helper()

	for _, seed := range seeds {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			g := New(seed)
			if !prop(g) {
				t.Errorf("proptest %q failed with seed %d", name, seed)
			}
		})
	}
}
