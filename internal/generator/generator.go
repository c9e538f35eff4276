// Package generator creates puzzles with a unique solution: fill a complete
// random grid, then carve clues away while the solver still reports a single
// solution.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/duke-git/lancet/v2/random"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// carveDeadline caps how long a single Generate call keeps carving.
const carveDeadline = 900 * time.Millisecond

// UniqueGenerator uses the provided solver for uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator that uses the given solver.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

func targetClues(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a seeded puzzle at the target difficulty.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	b := board.New()
	if err := fillRandom(ctx, rng, b); err != nil {
		return nil, ports.Stats{}, err
	}
	solution := b.Encode()

	positions := rng.Perm(board.CellCount)
	target := targetClues(diff)
	deadline := start.Add(carveDeadline)
	var stats ports.Stats

	for _, pos := range positions {
		if time.Now().After(deadline) {
			break
		}
		if board.CellCount-b.Unassigned() <= target {
			break
		}
		old := b.Cell(pos).Value()
		if old == 0 {
			continue
		}
		b.Cell(pos).Set(0)
		unique, st, err := g.Solver.Unique(ctx, b)
		stats.Backtracks += st.Backtracks
		if err != nil {
			return nil, stats, err
		}
		if !unique {
			b.Cell(pos).Set(old)
		}
	}

	p := &domain.Puzzle{
		ID:         random.RandString(6),
		Seed:       seed,
		Difficulty: diff,
		Encoding:   b.Encode(),
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	stats.Duration = time.Since(start)
	return p, stats, nil
}

// fillRandom solves the empty board into a full valid grid by trying digits
// in random order at each cell.
func fillRandom(ctx context.Context, rng *rand.Rand, b *board.Board) error {
	var dfs func(ci int) bool
	dfs = func(ci int) bool {
		if ctx.Err() != nil {
			return false
		}
		if ci == board.CellCount {
			return true
		}
		digits := b.Available(ci).Digits()
		rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
		for _, d := range digits {
			b.Cell(ci).Set(d)
			if dfs(ci + 1) {
				return true
			}
			b.Cell(ci).Set(0)
		}
		return false
	}
	if !dfs(0) {
		// Only cancellation can stop a fill from an empty board.
		return context.Canceled
	}
	return nil
}
