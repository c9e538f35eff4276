package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	g := NewUniqueGenerator(solver.Factory{})

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			p, _, err := g.Generate(ctx, 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s): %v", tc.name, err)
			}
			if p.ID == "" {
				t.Fatalf("puzzle has no ID")
			}
			if p.Difficulty != tc.diff {
				t.Fatalf("difficulty = %v, want %v", p.Difficulty, tc.diff)
			}

			b, err := board.Parse(p.Encoding)
			if err != nil {
				t.Fatalf("generated encoding invalid: %v", err)
			}
			clues := board.CellCount - b.Unassigned()
			if clues < 17 || clues > board.CellCount {
				t.Fatalf("clue count %d out of range", clues)
			}

			// The carved puzzle must keep a unique solution, and that
			// solution must be the full grid we started from.
			ok, _, err := solver.Factory{}.Unique(ctx, b)
			if err != nil {
				t.Fatalf("Unique: %v", err)
			}
			if !ok {
				t.Fatalf("generated puzzle is not unique")
			}
			if _, err := (solver.Factory{}).Solve(ctx, b); err != nil {
				t.Fatalf("generated puzzle unsolvable: %v", err)
			}
			if b.Encode() != p.Solution {
				t.Fatalf("solved grid differs from recorded solution")
			}
		})
	}
}

func TestGenerateRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewUniqueGenerator(solver.Factory{})
	if _, _, err := g.Generate(ctx, 1, domain.Easy); err == nil {
		t.Fatalf("expected error from canceled context")
	}
}
