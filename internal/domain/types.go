package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a single deduction the engine would make next.
type Hint struct {
	Message  string      `json:"message,omitempty"`
	Cells    []CellCoord `json:"cells,omitempty"`
	Digit    uint8       `json:"digit,omitempty"`
	Strategy string      `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata. Encoding and Solution are
// 81-character row-major strings ('.' for blanks).
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Encoding   string     `json:"encoding"`
	Solution   string     `json:"solution,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
