package board

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the board edge length and the group size.
	Size = 9
	// CellCount is the number of cells on the board.
	CellCount = Size * Size
	// GroupCount covers 9 rows, 9 columns, and 9 blocks.
	GroupCount = 3 * Size
)

// Parse failure kinds. Callers match them with errors.Is.
var (
	ErrTooShort          = errors.New("too short")
	ErrTooLong           = errors.New("too long")
	ErrInvalidCharacters = errors.New("invalid characters")
)

// Board owns the cell and group arenas. The group partition is fixed for the
// board's lifetime; only per-cell assignments change while solving.
type Board struct {
	cells  [CellCount]Cell
	groups [GroupCount]Group
	layout *Layout
}

// New constructs an empty board with the standard 3×3 block layout.
func New() *Board { return NewWithLayout(StandardLayout()) }

// NewWithLayout constructs an empty board. Groups 0–8 are rows, 9–17 are
// columns, 18–26 are the layout's blocks; every cell joins exactly one of
// each.
func NewWithLayout(l *Layout) *Board {
	b := &Board{layout: l}
	var fill [GroupCount]int // next free slot per group
	for pos := 0; pos < CellCount; pos++ {
		r, c := pos/Size, pos%Size
		gs := [3]int{r, Size + c, 2*Size + l.Block(pos)}
		b.cells[pos] = Cell{Row: r, Col: c, groups: gs}
		for _, gi := range gs {
			b.groups[gi].cells[fill[gi]] = pos
			fill[gi]++
		}
	}
	return b
}

// Clone returns an independent copy sharing the immutable layout.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Cell returns the cell at arena index ci (row-major, 0–80).
func (b *Board) Cell(ci int) *Cell { return &b.cells[ci] }

// At returns the cell at (row, col).
func (b *Board) At(row, col int) *Cell { return &b.cells[row*Size+col] }

// Layout returns the board's block partition.
func (b *Board) Layout() *Layout { return b.layout }

// Parse builds a standard-layout board from a puzzle text.
func Parse(text string) (*Board, error) {
	return ParseWithLayout(text, StandardLayout())
}

// ParseWithLayout normalizes text (dropping #-comment lines and all CR, LF,
// and tab characters), requires exactly 81 remaining characters from
// [0-9 .], and fills the board row-major. Digits 1–9 are clues; 0, '.', and
// space are blanks.
func ParseWithLayout(text string, l *Layout) (*Board, error) {
	enc, err := Normalize(text)
	if err != nil {
		return nil, err
	}
	b := NewWithLayout(l)
	b.Restore(enc)
	return b, nil
}

// Normalize strips comments and line noise from a puzzle text and validates
// the result as an 81-character encoding.
func Normalize(text string) (string, error) {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		for _, ch := range line {
			if ch == '\r' || ch == '\t' {
				continue
			}
			sb.WriteRune(ch)
		}
	}
	enc := sb.String()
	switch {
	case len(enc) < CellCount:
		return "", fmt.Errorf("puzzle encoding has %d cells: %w", len(enc), ErrTooShort)
	case len(enc) > CellCount:
		return "", fmt.Errorf("puzzle encoding has %d cells: %w", len(enc), ErrTooLong)
	}
	for i := 0; i < CellCount; i++ {
		if !validEncodingByte(enc[i]) {
			return "", fmt.Errorf("puzzle encoding byte %d is %q: %w", i, enc[i], ErrInvalidCharacters)
		}
	}
	return enc, nil
}

func validEncodingByte(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '.' || ch == ' '
}

// Restore resets every cell assignment from an 81-character encoding. It is
// both the initial load and the snapshot-restore used while backtracking, so
// it must accept anything Normalize lets through and anything Encode emits.
func (b *Board) Restore(enc string) {
	for i := 0; i < CellCount; i++ {
		ch := enc[i]
		if ch >= '1' && ch <= '9' {
			b.cells[i].Set(ch - '0')
		} else {
			b.cells[i].Set(0)
		}
	}
}

// Encode projects the board to its 81-character row-major encoding,
// unassigned cells as '.'.
func (b *Board) Encode() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for i := 0; i < CellCount; i++ {
		if v := b.cells[i].value; v != 0 {
			sb.WriteByte('0' + v)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// String renders the encoding in 3-character clusters, three clusters per
// row, with a blank line after every third row. Presentation only.
func (b *Board) String() string {
	enc := b.Encode()
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		row := enc[r*Size : (r+1)*Size]
		sb.WriteString(row[0:3])
		sb.WriteByte(' ')
		sb.WriteString(row[3:6])
		sb.WriteByte(' ')
		sb.WriteString(row[6:9])
		sb.WriteByte('\n')
		if r%3 == 2 && r != Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Solved reports whether every cell holds a digit. Group uniqueness is a
// maintained invariant, not re-checked here.
func (b *Board) Solved() bool {
	for i := range b.cells {
		if b.cells[i].value == 0 {
			return false
		}
	}
	return true
}

// Stuck reports whether some unassigned cell has no candidate left, the
// dead-end signal consumed by the backtracking strategy.
func (b *Board) Stuck() bool {
	for i := range b.cells {
		if b.cells[i].value == 0 && b.Available(i) == 0 {
			return true
		}
	}
	return false
}

// Unassigned counts the cells still without a digit.
func (b *Board) Unassigned() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].value == 0 {
			n++
		}
	}
	return n
}
