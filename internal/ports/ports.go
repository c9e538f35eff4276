package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures what a solve run cost.
type Stats struct {
	Assignments     int
	Backtracks      int
	MaxAlternatives int
	Duration        time.Duration
}

// Solver mutates a board toward a solution and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) (Stats, error)
	Unique(ctx context.Context, b *board.Board) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast duplicate checks over every group.
type Validator interface {
	Validate(ctx context.Context, b *board.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step without mutating the board.
type Hinter interface {
	Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

// Source fetches puzzle encodings from an external collection.
type Source interface {
	Fetch(ctx context.Context, path string) ([]string, error)
}
