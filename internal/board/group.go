package board

// Group is a set of exactly 9 cells in which each digit may appear at most
// once. Groups store cell indices into the board arena; membership never
// changes after construction. All queries are recomputed from current cell
// state, so there is no cache to go stale.
type Group struct {
	cells [Size]int
}

// Cells returns the indices of the group's member cells.
func (g *Group) Cells() [Size]int { return g.cells }

// Group returns the group at arena index gi (rows 0–8, columns 9–17,
// blocks 18–26).
func (b *Board) Group(gi int) *Group { return &b.groups[gi] }

// Numbers returns the digits currently assigned within group gi.
func (b *Board) Numbers(gi int) DigitSet {
	var s DigitSet
	for _, ci := range b.groups[gi].cells {
		if v := b.cells[ci].value; v != 0 {
			s = s.Add(v)
		}
	}
	return s
}

// OpenNumbers returns the digits not yet assigned within group gi.
func (b *Board) OpenNumbers(gi int) DigitSet {
	return AllDigits &^ b.Numbers(gi)
}

// CellsOpenFor returns the unassigned cells of group gi that can still take
// digit d, in the group's fixed member order.
func (b *Board) CellsOpenFor(gi int, d uint8) []int {
	var out []int
	for _, ci := range b.groups[gi].cells {
		if !b.cells[ci].Assigned() && b.Available(ci).Has(d) {
			out = append(out, ci)
		}
	}
	return out
}

// OpenCells maps each open digit of group gi to the cells that can take it.
func (b *Board) OpenCells(gi int) map[uint8][]int {
	out := make(map[uint8][]int)
	for d := uint8(1); d <= Size; d++ {
		if b.Numbers(gi).Has(d) {
			continue
		}
		out[d] = b.CellsOpenFor(gi, d)
	}
	return out
}
