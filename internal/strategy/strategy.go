// Package strategy holds the deduction and search steps the solve loop runs
// in priority order. Each strategy attempts exactly one assignment per call
// and reports what it did as data; nothing in this package performs I/O.
package strategy

import (
	"fmt"

	"svw.info/sudoku-solver/internal/board"
)

// Step records one assignment for the presentation layer.
type Step struct {
	Strategy string `json:"strategy"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Digit    uint8  `json:"digit"`
	Reason   string `json:"reason,omitempty"`
}

func (s Step) String() string {
	return fmt.Sprintf("%s: r%dc%d=%d (%s)", s.Strategy, s.Row+1, s.Col+1, s.Digit, s.Reason)
}

// Strategy attempts one deterministic assignment on the board. ok is false
// when the strategy cannot make progress; the board is then unchanged unless
// the strategy restored an earlier snapshot as part of its contract.
type Strategy interface {
	Name() string
	Apply(b *board.Board) (step Step, ok bool)
}

// Resetter is implemented by strategies that carry state between calls and
// must be cleared before a new solve.
type Resetter interface {
	Reset()
}
