package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Service wires the engine and its collaborators behind one facade for the
// CLI and HTTP adapters.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
	Source    ports.Source
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage, src ports.Source) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st, Source: src}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// SolveText parses raw puzzle text and solves it, returning the solved
// 81-character encoding.
func (u *Service) SolveText(ctx context.Context, raw string) (string, ports.Stats, error) {
	if u.Solver == nil {
		return "", ports.Stats{}, errNotConfigured
	}
	b, err := board.Parse(raw)
	if err != nil {
		return "", ports.Stats{}, err
	}
	stats, err := u.Solver.Solve(ctx, b)
	if err != nil {
		return "", stats, err
	}
	return b.Encode(), stats, nil
}

func (u *Service) Solve(ctx context.Context, b *board.Board) (ports.Stats, error) {
	if u.Solver == nil {
		return ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *board.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *board.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

// Fetch pulls puzzle encodings from the configured remote collection.
func (u *Service) Fetch(ctx context.Context, path string) ([]string, error) {
	if u.Source == nil {
		return nil, errNotConfigured
	}
	return u.Source.Fetch(ctx, path)
}
