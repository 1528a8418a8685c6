package life

import (
	"bufio"
	"io"
	"strings"
)

// Render returns the textual projection of the current generation: one
// glyph per cell, rows separated by newlines.
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(len(g.cur)*3 + g.h)
	g.render(&sb)
	return sb.String()
}

func (g *Grid) String() string { return g.Render() }

// WriteTo streams the textual projection to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	g.render(bw)
	err := bw.Flush()
	return cw.n, err
}

type runeWriter interface {
	WriteRune(r rune) (int, error)
	WriteByte(c byte) error
}

func (g *Grid) render(out runeWriter) {
	for row := 0; row < g.h; row++ {
		for _, c := range g.cur[row*g.w : (row+1)*g.w] {
			out.WriteRune(c.Glyph())
		}
		out.WriteByte('\n')
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
