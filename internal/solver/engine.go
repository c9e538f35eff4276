package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/strategy"
)

// ErrNoSolution is returned when every configured strategy fails to make
// progress: either the puzzle is genuinely unsolvable or the strategy set
// lacks backtracking. No retry is attempted here; the caller may re-invoke
// with a richer strategy set.
var ErrNoSolution = errors.New("no solution found")

// searchReporter is implemented by strategies that track search diagnostics.
type searchReporter interface {
	Backtracks() int
	MaxAlternatives() int
}

// Engine runs an ordered strategy list against a board until it is solved
// or no strategy can act. It mutates boards in place, performs no I/O, and
// records a structured trace instead of printing. An Engine carries
// per-solve state and is not safe for concurrent use; share a Factory
// instead.
type Engine struct {
	strategies []strategy.Strategy
	trace      []strategy.Step
}

// New builds an engine with the given strategy priority order. With no
// arguments it uses the default set: naked single, hidden single,
// backtracking.
func New(strategies ...strategy.Strategy) *Engine {
	if len(strategies) == 0 {
		strategies = []strategy.Strategy{
			strategy.NakedSingle{},
			strategy.HiddenSingle{},
			strategy.NewBacktracking(),
		}
	}
	return &Engine{strategies: strategies}
}

// Trace returns the steps recorded by the most recent Solve call.
func (e *Engine) Trace() []strategy.Step { return e.trace }

// Solve repeatedly asks each strategy, in priority order, to make one
// assignment, restarting the scan from the top after every success: a cheap
// deduction unlocked by a guess should always win over the next guess. On
// failure the board is left in its last-attempted configuration and must
// not be trusted as a solution.
func (e *Engine) Solve(ctx context.Context, b *board.Board) (ports.Stats, error) {
	start := time.Now()
	e.trace = e.trace[:0]
	var stats ports.Stats
	for _, s := range e.strategies {
		if r, ok := s.(strategy.Resetter); ok {
			r.Reset()
		}
	}

	for !b.Solved() {
		if err := ctx.Err(); err != nil {
			return e.finish(stats, start), err
		}
		progressed := false
		for _, s := range e.strategies {
			step, ok := s.Apply(b)
			if ok {
				stats.Assignments++
				e.trace = append(e.trace, step)
				progressed = true
				break
			}
		}
		if !progressed {
			return e.finish(stats, start), ErrNoSolution
		}
	}
	return e.finish(stats, start), nil
}

func (e *Engine) finish(stats ports.Stats, start time.Time) ports.Stats {
	for _, s := range e.strategies {
		if r, ok := s.(searchReporter); ok {
			stats.Backtracks += r.Backtracks()
			if m := r.MaxAlternatives(); m > stats.MaxAlternatives {
				stats.MaxAlternatives = m
			}
		}
	}
	stats.Duration = time.Since(start)
	return stats
}

// SolveText is the engine boundary exposed to the presentation layer:
// puzzle text in, solved 81-character encoding out. Parse failures surface
// immediately and are never retried.
func (e *Engine) SolveText(ctx context.Context, raw string) (string, ports.Stats, error) {
	b, err := board.Parse(raw)
	if err != nil {
		return "", ports.Stats{}, err
	}
	stats, err := e.Solve(ctx, b)
	if err != nil {
		return "", stats, err
	}
	return b.Encode(), stats, nil
}
