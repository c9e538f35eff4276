package board

import "fmt"

// Layout describes which block each cell belongs to. Rows and columns are
// fixed by geometry; only the block partition varies between the standard
// 3×3 boxes and irregular jigsaw shapes, so the layout is just an 81-entry
// label table.
//
// A Layout is immutable after construction and safe to share between boards.
type Layout struct {
	Name   string
	blocks [CellCount]int
}

// StandardLayout returns the classic 3×3 box partition.
func StandardLayout() *Layout {
	var labels [CellCount]int
	for pos := 0; pos < CellCount; pos++ {
		r, c := pos/Size, pos%Size
		labels[pos] = (r/3)*3 + c/3
	}
	l, err := NewLayout("standard", labels)
	if err != nil {
		// The table above is hard-coded; failing validation is a bug.
		panic("standard layout failed validation: " + err.Error())
	}
	return l
}

// NewLayout builds a layout from an arbitrary block-label table.
// Every label must be in [0, 8] and every block must receive exactly 9 cells.
func NewLayout(name string, labels [CellCount]int) (*Layout, error) {
	var counts [Size]int
	for pos, b := range labels {
		if b < 0 || b >= Size {
			return nil, fmt.Errorf("layout %s: cell %d has out-of-range block %d", name, pos, b)
		}
		counts[b]++
	}
	for b, n := range counts {
		if n != Size {
			return nil, fmt.Errorf("layout %s: block %d has %d cells, want %d", name, b, n, Size)
		}
	}
	return &Layout{Name: name, blocks: labels}, nil
}

// Block returns the block index of the cell at pos (0–80).
func (l *Layout) Block(pos int) int { return l.blocks[pos] }
