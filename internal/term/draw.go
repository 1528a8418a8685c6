// Package term runs a simulation in the terminal using tcell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"torus-life/pkg/life"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// Draw paints a row-major cell buffer of the given width at the top-left
// corner of screen, one column per cell, and status on the row below it.
// Cells that do not fit are clipped.
func Draw(screen tcell.Screen, cells []life.Cell, width int, status string) {
	screen.Clear()
	height := 0
	if width > 0 {
		height = len(cells) / width
	}
	sw, sh := screen.Size()
	rows := min(height, sh)
	cols := min(width, sw)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := cells[row*width+col]
			style := deadStyle
			if c == life.Alive {
				style = aliveStyle
			}
			screen.SetContent(col, row, c.Glyph(), nil, style)
		}
	}
	if height < sh {
		drawText(screen, 0, height, status, statusStyle)
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
