package life

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseRoundTrip(t *testing.T) {
	g := NewWithSeed(13, 7, RandomSeed(5))
	parsed, err := Parse(g.Render())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(g) {
		t.Fatalf("round trip mismatch:\n%s\nwant\n%s", parsed, g)
	}
}

func TestParseAlternateGlyphs(t *testing.T) {
	g, err := Parse("O.#\r\n...\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Width(), g.Height())
	}
	if g.CellAt(0, 0) != Alive || g.CellAt(0, 1) != Dead || g.CellAt(0, 2) != Alive {
		t.Fatalf("unexpected first row:\n%s", g)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "\n\n", ErrEmptyPattern},
		{"ragged", "##\n#\n", ErrRaggedPattern},
	}
	for _, tc := range cases {
		_, err := Parse(tc.input)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
	if _, err := Parse("#x\n"); err == nil {
		t.Fatal("unexpected character accepted")
	}
}
