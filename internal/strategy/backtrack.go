package strategy

import (
	"fmt"

	"svw.info/sudoku-solver/internal/board"
)

// alternative is one recorded choice point: restore the snapshot, then
// assign digit to the cell.
type alternative struct {
	snapshot string
	cell     int
	digit    uint8
}

// Backtracking is the guessing strategy: depth-first search with explicit
// board snapshots on a LIFO stack instead of an implicit call stack. While
// the board is not stuck it guesses a digit for the unassigned cell with the
// fewest candidates; once stuck it restores the most recent untried
// alternative. Snapshots are full 81-character encodings, O(board) per
// restore, which is fine at this scale.
type Backtracking struct {
	alts       []alternative
	maxAlts    int
	backtracks int
}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Name() string { return "backtracking" }

// Reset clears search state between solves.
func (s *Backtracking) Reset() {
	s.alts = s.alts[:0]
	s.maxAlts = 0
	s.backtracks = 0
}

// Backtracks returns how many dead-ends were unwound so far.
func (s *Backtracking) Backtracks() int { return s.backtracks }

// MaxAlternatives is the high-water mark of the alternatives stack,
// a diagnostic for search breadth.
func (s *Backtracking) MaxAlternatives() int { return s.maxAlts }

func (s *Backtracking) Apply(b *board.Board) (Step, bool) {
	if !b.Stuck() {
		ci := s.chooseCell(b)
		if ci < 0 {
			return Step{}, false
		}
		snap := b.Encode()
		digits := b.Available(ci).Digits()
		// Push high digits first so the LIFO pop tries candidates in
		// ascending order.
		for i := len(digits) - 1; i >= 0; i-- {
			s.alts = append(s.alts, alternative{snapshot: snap, cell: ci, digit: digits[i]})
		}
		if len(s.alts) > s.maxAlts {
			s.maxAlts = len(s.alts)
		}
		return s.applyTop(b, fmt.Sprintf("guess among %d candidates", len(digits))), true
	}

	if len(s.alts) == 0 {
		// Search exhausted: no solution reachable from the initial state.
		return Step{}, false
	}
	s.backtracks++
	return s.applyTop(b, "dead end, restored earlier state"), true
}

// applyTop pops the top alternative, restores its snapshot (undoing every
// assignment made since it was recorded), and assigns its digit.
func (s *Backtracking) applyTop(b *board.Board, reason string) Step {
	top := s.alts[len(s.alts)-1]
	s.alts = s.alts[:len(s.alts)-1]
	b.Restore(top.snapshot)
	c := b.Cell(top.cell)
	c.Set(top.digit)
	return Step{
		Strategy: s.Name(),
		Row:      c.Row,
		Col:      c.Col,
		Digit:    top.digit,
		Reason:   reason,
	}
}

// chooseCell picks the unassigned cell with the fewest available digits;
// ties break toward the lower row-major index, which keeps the search
// deterministic. Returns -1 on a fully assigned board.
func (s *Backtracking) chooseCell(b *board.Board) int {
	best, bestCount := -1, board.Size+1
	for ci := 0; ci < board.CellCount; ci++ {
		if b.Cell(ci).Assigned() {
			continue
		}
		if n := b.Available(ci).Count(); n < bestCount {
			best, bestCount = ci, n
		}
	}
	return best
}
