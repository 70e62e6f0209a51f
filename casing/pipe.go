package casing

// Pipe composes transforms left to right: Pipe(f, g, h)(x) == h(g(f(x))).
// Pipe(f) behaves exactly like f.
func Pipe(first Transform, rest ...Transform) Transform {
	out := first
	for _, next := range rest {
		out = pipe2(out, next)
	}
	return out
}

func pipe2(a, b Transform) Transform {
	return func(s string) string {
		return b(a(s))
	}
}
