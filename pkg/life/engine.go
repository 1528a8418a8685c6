package life

// LiveNeighborCount returns how many of the eight cells around (row, column)
// are alive. Coordinates wrap at the edges, so every cell has a full
// neighborhood.
func (g *Grid) LiveNeighborCount(row, column int) int {
	w, h := g.w, g.h
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + h) % h
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (column + dc + w) % w
			count += int(g.cur[r*w+c])
		}
	}
	return count
}

// NextState applies the B3/S23 rule to a cell with the given number of
// live neighbors.
func NextState(cell Cell, liveNeighbors int) Cell {
	switch {
	case cell == Alive && liveNeighbors < 2:
		return Dead
	case cell == Alive && (liveNeighbors == 2 || liveNeighbors == 3):
		return Alive
	case cell == Alive && liveNeighbors > 3:
		return Dead
	case cell == Dead && liveNeighbors == 3:
		return Alive
	default:
		return Dead
	}
}

// Tick advances the grid by one generation. The next generation is built
// entirely from the current one before the buffers are swapped.
func (g *Grid) Tick() {
	w, h := g.w, g.h
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			g.nxt[idx] = NextState(g.cur[idx], g.LiveNeighborCount(row, col))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}
