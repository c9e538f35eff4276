package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/board"
	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator detects duplicate digits within any group using per-group
// bitmasks. Because it walks the board's group arena it covers jigsaw block
// layouts for free.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *board.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for gi := 0; gi < board.GroupCount; gi++ {
		m := 0
		for _, ci := range b.Group(gi).Cells() {
			c := b.Cell(ci)
			val := c.Value()
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: c.Row, Col: c.Col})
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
