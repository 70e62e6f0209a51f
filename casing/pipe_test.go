package casing

import (
	"strings"
	"testing"
)

func TestPipe_Single(t *testing.T) {
	for _, in := range []string{"", "blog-post", "Hello World"} {
		if got, want := Pipe(Capitalize)(in), Capitalize(in); got != want {
			t.Errorf("Pipe(Capitalize)(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPipe_Order(t *testing.T) {
	f := func(s string) string { return s + "f" }
	g := func(s string) string { return s + "g" }
	h := func(s string) string { return s + "h" }

	if got := Pipe(f, g, h)("x"); got != "xfgh" {
		t.Errorf("Pipe(f, g, h)(x) = %q, want %q", got, "xfgh")
	}
	if got := Pipe(h, g, f)("x"); got != "xhgf" {
		t.Errorf("Pipe(h, g, f)(x) = %q, want %q", got, "xhgf")
	}
}

func TestPipe_Associative(t *testing.T) {
	a, b, c := Transform(StripDashes), Transform(CapitalizeWords), Transform(strings.TrimSpace)

	flat := Pipe(a, b, c)
	left := Pipe(Pipe(a, b), c)
	right := Pipe(a, Pipe(b, c))

	for _, in := range []string{"blog-post", "-lead", "", "a-b-c-"} {
		want := flat(in)
		if got := left(in); got != want {
			t.Errorf("Pipe(Pipe(a, b), c)(%q) = %q, want %q", in, got, want)
		}
		if got := right(in); got != want {
			t.Errorf("Pipe(a, Pipe(b, c))(%q) = %q, want %q", in, got, want)
		}
	}
}
