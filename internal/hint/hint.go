package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/strategy"
)

// Deductions surfaces the engine's next deterministic step as a hint. Only
// the deduction strategies run here; a hint should never guess.
type Deductions struct {
	strategies []strategy.Strategy
}

func New() *Deductions {
	return &Deductions{strategies: []strategy.Strategy{
		strategy.NakedSingle{},
		strategy.HiddenSingle{},
	}}
}

// Hint applies strategies to a scratch copy so the caller's board stays
// untouched.
func (h *Deductions) Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	scratch := b.Clone()
	for _, s := range h.strategies {
		step, ok := s.Apply(scratch)
		if !ok {
			continue
		}
		return domain.Hint{
			Message:  fmt.Sprintf("%s: %d fits at row %d, column %d", step.Strategy, step.Digit, step.Row+1, step.Col+1),
			Cells:    []domain.CellCoord{{Row: step.Row, Col: step.Col}},
			Digit:    step.Digit,
			Strategy: step.Strategy,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}
