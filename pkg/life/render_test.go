package life

import (
	"strings"
	"testing"
)

func TestRenderClassic4x4(t *testing.T) {
	want := "◼◻◼◻\n◼◻◼◼\n◼◻◼◻\n◼◻◼◻\n"
	g := New(4, 4)
	if got := g.Render(); got != want {
		t.Fatalf("Render() =\n%s\nwant\n%s", got, want)
	}
	if g.String() != want {
		t.Fatal("String() differs from Render()")
	}
}

func TestRenderShape(t *testing.T) {
	g := NewDefault()
	lines := strings.Split(strings.TrimSuffix(g.Render(), "\n"), "\n")
	if len(lines) != 64 {
		t.Fatalf("got %d rows, want 64", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 64 {
			t.Fatalf("row %d has %d glyphs, want 64", i, n)
		}
	}
}

func TestWriteToMatchesRender(t *testing.T) {
	g := NewWithSeed(9, 5, RandomSeed(11))
	var sb strings.Builder
	n, err := g.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if sb.String() != g.Render() {
		t.Fatal("WriteTo output differs from Render")
	}
	if n != int64(len(sb.String())) {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, len(sb.String()))
	}
}

func TestGlyphs(t *testing.T) {
	if Alive.Glyph() != '◼' || Dead.Glyph() != '◻' {
		t.Fatalf("glyphs = %q/%q", Alive.Glyph(), Dead.Glyph())
	}
}
