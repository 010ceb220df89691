package extract

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "collapses runs and tightens commas", in: "  A   ,B ", want: "A, B"},
		{name: "space before comma", in: "X , Y", want: "X, Y"},
		{name: "space after comma only", in: "X ,Y", want: "X, Y"},
		{name: "newlines collapse to spaces", in: "123 Main St,\nSpringfield", want: "123 Main St, Springfield"},
		{name: "tabs collapse", in: "a\t\tb", want: "a b"},
		{name: "already normalized", in: "123 Main St, Springfield, CA 94000", want: "123 Main St, Springfield, CA 94000"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \n\t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNormalizeIdempotent verifies normalize(normalize(s)) == normalize(s)
// for representative inputs, including awkward comma placements.
func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"  A   ,B ",
		"123 Main St,\n Springfield ,CA 94000",
		"trailing comma,",
		",leading comma",
		"a ,, b",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
