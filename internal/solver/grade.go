package solver

import (
	"context"
	"errors"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/strategy"
)

// expertBacktracks is the search effort above which a puzzle stops being
// merely hard.
const expertBacktracks = 50

// Grade rates a puzzle by the weakest strategy set that still solves it:
// naked singles alone make it easy, adding hidden singles medium, and
// anything that needs guessing is hard or, past a backtrack budget, expert.
// Grading works on copies; the input board is untouched.
func Grade(ctx context.Context, b *board.Board) (domain.Difficulty, error) {
	naked := New(strategy.NakedSingle{})
	if _, err := naked.Solve(ctx, b.Clone()); err == nil {
		return domain.Easy, nil
	} else if !isNoSolution(err) {
		return domain.Medium, err
	}

	singles := New(strategy.NakedSingle{}, strategy.HiddenSingle{})
	if _, err := singles.Solve(ctx, b.Clone()); err == nil {
		return domain.Medium, nil
	} else if !isNoSolution(err) {
		return domain.Medium, err
	}

	full := New()
	stats, err := full.Solve(ctx, b.Clone())
	if err != nil {
		return domain.Medium, err
	}
	if stats.Backtracks > expertBacktracks {
		return domain.Expert, nil
	}
	return domain.Hard, nil
}

func isNoSolution(err error) bool { return errors.Is(err, ErrNoSolution) }
