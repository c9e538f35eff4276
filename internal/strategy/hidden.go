package strategy

import "svw.info/sudoku-solver/internal/board"

// HiddenSingle scans groups in fixed order (rows, columns, blocks) and, per
// group, digits in ascending order; it assigns the first digit that has
// exactly one open cell within its group.
type HiddenSingle struct{}

func (HiddenSingle) Name() string { return "hidden-single" }

func (s HiddenSingle) Apply(b *board.Board) (Step, bool) {
	for gi := 0; gi < board.GroupCount; gi++ {
		assigned := b.Numbers(gi)
		for d := uint8(1); d <= board.Size; d++ {
			if assigned.Has(d) {
				continue
			}
			open := b.CellsOpenFor(gi, d)
			if len(open) != 1 {
				continue
			}
			c := b.Cell(open[0])
			c.Set(d)
			return Step{
				Strategy: s.Name(),
				Row:      c.Row,
				Col:      c.Col,
				Digit:    d,
				Reason:   "only open cell for the digit in its group",
			}, true
		}
	}
	return Step{}, false
}
