package solver

import (
	"context"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/ports"
)

// Factory hands every call a fresh engine with the default strategy set. An
// Engine keeps per-solve search state and a trace, so it must not be shared
// across concurrent callers; Factory is the shareable front for servers.
type Factory struct{}

func (Factory) Solve(ctx context.Context, b *board.Board) (ports.Stats, error) {
	return New().Solve(ctx, b)
}

func (Factory) Unique(ctx context.Context, b *board.Board) (bool, ports.Stats, error) {
	return New().Unique(ctx, b)
}
