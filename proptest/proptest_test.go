package proptest

import (
	"strings"
	"testing"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		if x, y := a.Identifier(4), b.Identifier(4); x != y {
			t.Fatalf("trial %d: %q != %q", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
}

func TestNew_ZeroSeedIsReplaced(t *testing.T) {
	if New(0).Seed() == 0 {
		t.Error("expected a time-based seed when 0 is given")
	}
}

func TestIntRange(t *testing.T) {
	g := New(1)
	for i := 0; i < 200; i++ {
		n := g.IntRange(3, 7)
		if n < 3 || n > 7 {
			t.Fatalf("IntRange(3, 7) = %d", n)
		}
	}
}

func TestIntRange_PanicsOnInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	New(1).IntRange(5, 4)
}

func TestOneOf_PanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	OneOf[string](New(1))
}

func TestSlice_Length(t *testing.T) {
	g := New(7)
	for i := 0; i < 100; i++ {
		s := Slice(g, 2, 5, func(g *Generator) bool { return g.Bool() })
		if len(s) < 2 || len(s) > 5 {
			t.Fatalf("len = %d, want [2, 5]", len(s))
		}
	}
}

func TestStringFrom(t *testing.T) {
	g := New(3)
	if got := g.StringFrom(CharsetDigits, 0); got != "" {
		t.Errorf("maxLen 0 should give empty string, got %q", got)
	}
	for i := 0; i < 100; i++ {
		s := g.StringFrom(CharsetDigits, 10)
		if len(s) > 10 {
			t.Fatalf("len(%q) > 10", s)
		}
		if strings.Trim(s, CharsetDigits) != "" {
			t.Fatalf("%q contains characters outside the charset", s)
		}
	}
}

func TestNamingGenerators(t *testing.T) {
	QuickCheck(t, "dash case", func(g *Generator) bool {
		s := g.DashCase(4)
		return s != "" && !strings.ContainsAny(s, "_ ") && !strings.Contains(s, "--")
	})
	QuickCheck(t, "snake case", func(g *Generator) bool {
		s := g.SnakeCase(4)
		return s == strings.ToLower(s) && !strings.ContainsAny(s, "- ")
	})
	QuickCheck(t, "space case", func(g *Generator) bool {
		s := g.SpaceCase(4)
		return !strings.HasPrefix(s, " ") && !strings.Contains(s, "  ")
	})
	QuickCheck(t, "pascal case", func(g *Generator) bool {
		s := g.PascalCase(4)
		return s[0] >= 'A' && s[0] <= 'Z' && !strings.ContainsAny(s, "-_ ")
	})
	QuickCheck(t, "camel case", func(g *Generator) bool {
		s := g.CamelCase(4)
		return s[0] >= 'a' && s[0] <= 'z' && !strings.ContainsAny(s, "-_ ")
	})
}

func TestRunSeeds(t *testing.T) {
	var seen []int64
	RunSeeds(t, "records seeds", []int64{1, 2, 3}, func(g *Generator) bool {
		seen = append(seen, g.Seed())
		return true
	})
	if len(seen) != 3 || seen[0] != 1 || seen[2] != 3 {
		t.Errorf("seen = %v", seen)
	}
}

func TestEffectiveSeed_Env(t *testing.T) {
	t.Setenv("PROPTEST_SEED", "1234")
	if got := effectiveSeed(Config{Seed: 9}); got != 1234 {
		t.Errorf("effectiveSeed = %d, want 1234", got)
	}

	t.Setenv("PROPTEST_SEED", "")
	if got := effectiveSeed(Config{Seed: 9}); got != 9 {
		t.Errorf("effectiveSeed = %d, want 9", got)
	}
}
