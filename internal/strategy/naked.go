package strategy

import "svw.info/sudoku-solver/internal/board"

// NakedSingle assigns the first cell (row-major scan) whose available set
// has exactly one digit.
type NakedSingle struct{}

func (NakedSingle) Name() string { return "naked-single" }

func (s NakedSingle) Apply(b *board.Board) (Step, bool) {
	for ci := 0; ci < board.CellCount; ci++ {
		c := b.Cell(ci)
		if c.Assigned() {
			continue
		}
		avail := b.Available(ci)
		if avail.Count() != 1 {
			continue
		}
		d := avail.Lowest()
		c.Set(d)
		return Step{
			Strategy: s.Name(),
			Row:      c.Row,
			Col:      c.Col,
			Digit:    d,
			Reason:   "only candidate left in the cell",
		}, true
	}
	return Step{}, false
}
