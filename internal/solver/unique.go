package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/ports"
)

// CountSolutions exhaustively searches the board, counting distinct
// solutions up to limit, then undoes every assignment it made. The board's
// clue cells are untouched.
func (e *Engine) CountSolutions(ctx context.Context, b *board.Board, limit int) (int, error) {
	count := 0
	var dfs func() error
	dfs = func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if count >= limit {
			return nil
		}
		ci := mostConstrained(b)
		if ci < 0 {
			count++
			return nil
		}
		for _, d := range b.Available(ci).Digits() {
			b.Cell(ci).Set(d)
			if err := dfs(); err != nil {
				b.Cell(ci).Set(0)
				return err
			}
			b.Cell(ci).Set(0)
			if count >= limit {
				return nil
			}
		}
		return nil
	}
	if err := dfs(); err != nil {
		return count, err
	}
	return count, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (e *Engine) Unique(ctx context.Context, b *board.Board) (bool, ports.Stats, error) {
	start := time.Now()
	n, err := e.CountSolutions(ctx, b, 2)
	stats := ports.Stats{Duration: time.Since(start)}
	if err != nil {
		return false, stats, err
	}
	return n == 1, stats, nil
}

// mostConstrained returns the unassigned cell with the fewest candidates,
// ties broken by row-major index; -1 when the board is fully assigned.
func mostConstrained(b *board.Board) int {
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
