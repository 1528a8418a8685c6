package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Glyphs used by the textual projection.
const (
	AliveGlyph = '◼'
	DeadGlyph  = '◻'
)

// Glyph returns the rune used to display the cell.
func (c Cell) Glyph() rune {
	if c == Alive {
		return AliveGlyph
	}
	return DeadGlyph
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
