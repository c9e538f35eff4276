package board

import "math/bits"

// DigitSet is a bitmask over the digits 1–9; bit d-1 represents digit d.
type DigitSet uint16

// AllDigits has every digit 1–9 present.
const AllDigits DigitSet = 1<<Size - 1

func (s DigitSet) Has(d uint8) bool     { return s&(1<<(d-1)) != 0 }
func (s DigitSet) Add(d uint8) DigitSet { return s | 1<<(d-1) }
func (s DigitSet) Count() int           { return bits.OnesCount16(uint16(s)) }

// Lowest returns the smallest digit in the set, 0 if empty.
func (s DigitSet) Lowest() uint8 {
	if s == 0 {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1
}

// Digits lists the members in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for d := uint8(1); d <= Size; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Cell is one board position. Its identity (row, column) and group
// membership are fixed at construction; only the assigned value changes
// while solving.
type Cell struct {
	Row, Col int
	value    uint8
	groups   [3]int // indices into the board's group arena: row, column, block
}

// Value returns the assigned digit, 0 if unassigned.
func (c *Cell) Value() uint8 { return c.value }

// Assigned reports whether the cell holds a digit.
func (c *Cell) Assigned() bool { return c.value != 0 }

// Set assigns a digit; 0 clears the cell. Legality against peers is the
// caller's responsibility.
func (c *Cell) Set(v uint8) { c.value = v }

// Groups returns the indices of the three groups the cell belongs to.
func (c *Cell) Groups() [3]int { return c.groups }

// Available computes the digits the cell at index ci can still take: all
// digits minus those assigned anywhere in its row, column, or block. The set
// is empty once the cell itself is assigned. Recomputed from live group
// state on every call.
func (b *Board) Available(ci int) DigitSet {
	c := &b.cells[ci]
	if c.value != 0 {
		return 0
	}
	var used DigitSet
	for _, gi := range c.groups {
		used |= b.Numbers(gi)
	}
	return AllDigits &^ used
}
