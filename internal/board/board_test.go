package board

import (
	"errors"
	"strings"
	"testing"
)

// The classic Wikipedia example puzzle and its unique solution.
const (
	sample = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	solved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"too short", sample[:80], ErrTooShort},
		{"too long", sample + ".", ErrTooLong},
		{"invalid characters", "x" + sample[1:], ErrInvalidCharacters},
		{"letter in the middle", sample[:40] + "x" + sample[41:], ErrInvalidCharacters},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("Parse error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseNormalization(t *testing.T) {
	// Comment lines, CR/LF/tab noise, and 0/space blanks must all be
	// accepted; the encoding always comes back with '.' blanks.
	var sb strings.Builder
	sb.WriteString("# classic example\r\n")
	for r := 0; r < Size; r++ {
		row := sample[r*Size : (r+1)*Size]
		row = strings.Replace(row, ".", "0", 1) // first blank per row as 0
		sb.WriteString("\t" + row + "\r\n")
	}
	b, err := Parse(sb.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := b.Encode(); got != sample {
		t.Fatalf("Encode = %q, want %q", got, sample)
	}
}

func TestParseSpaceBlanks(t *testing.T) {
	spaced := strings.ReplaceAll(sample, ".", " ")
	b, err := Parse(spaced)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := b.Encode(); got != sample {
		t.Fatalf("Encode = %q, want %q", got, sample)
	}
}

func TestParseIdempotent(t *testing.T) {
	b1, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b2, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b1.Encode() != b2.Encode() {
		t.Fatalf("parsing the same text twice produced different boards")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	b, err := Parse(solved)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b2, err := Parse(b.Encode())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if b2.Encode() != b.Encode() {
		t.Fatalf("round trip changed the encoding")
	}
}

func TestAvailable(t *testing.T) {
	b := New()
	if got := b.Available(0); got != AllDigits {
		t.Fatalf("empty board availability = %09b, want all digits", got)
	}
	b.At(0, 0).Set(5)
	if got := b.Available(0); got != 0 {
		t.Fatalf("assigned cell availability = %09b, want empty", got)
	}
	// Row, column, and block peers all lose 5.
	for _, ci := range []int{1, 9, 10, 8 * 9} {
		if b.Available(ci).Has(5) {
			t.Fatalf("cell %d still has 5 available", ci)
		}
	}
	// A cell sharing no group keeps all digits.
	if got := b.Available(4*9 + 4); got != AllDigits {
		t.Fatalf("unrelated cell availability = %09b, want all digits", got)
	}
}

func TestAvailabilityShrinksMonotonically(t *testing.T) {
	b, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var before [CellCount]DigitSet
	for ci := 0; ci < CellCount; ci++ {
		before[ci] = b.Available(ci)
	}
	// (0,2) is blank in the sample; 4 is its solved value.
	b.At(0, 2).Set(4)
	if got := b.Available(2); got != 0 {
		t.Fatalf("assigned cell availability = %09b, want empty", got)
	}
	for ci := 0; ci < CellCount; ci++ {
		if ci == 2 {
			continue
		}
		if after := b.Available(ci); after&^before[ci] != 0 {
			t.Fatalf("cell %d availability grew: %09b -> %09b", ci, before[ci], after)
		}
	}
}

func TestSolvedAndStuck(t *testing.T) {
	b, err := Parse(solved)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !b.Solved() {
		t.Fatalf("full board not reported solved")
	}
	if b.Stuck() {
		t.Fatalf("full board reported stuck")
	}

	// (0,8) sees 1–8 in its row and 9 in its column: no candidate left.
	stuck := "12345678." + "........9" + strings.Repeat(".", 63)
	b2, err := Parse(stuck)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b2.Solved() {
		t.Fatalf("partial board reported solved")
	}
	if !b2.Stuck() {
		t.Fatalf("dead-end board not reported stuck")
	}
}

func TestString(t *testing.T) {
	b, err := Parse(solved)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	lines := strings.Split(b.String(), "\n")
	if lines[0] != "534 678 912" {
		t.Fatalf("first rendered row = %q", lines[0])
	}
	if lines[3] != "" {
		t.Fatalf("expected blank line after third row, got %q", lines[3])
	}
}

func TestGroupQueries(t *testing.T) {
	b := New()
	b.At(0, 0).Set(1)
	b.At(0, 5).Set(2)

	row0 := 0 // group arena: rows first
	nums := b.Numbers(row0)
	if !nums.Has(1) || !nums.Has(2) || nums.Count() != 2 {
		t.Fatalf("row numbers = %09b, want {1,2}", nums)
	}
	open := b.OpenNumbers(row0)
	if open.Has(1) || open.Count() != 7 {
		t.Fatalf("open numbers = %09b", open)
	}
	if got := b.CellsOpenFor(row0, 1); len(got) != 0 {
		t.Fatalf("cells open for assigned digit = %v, want none", got)
	}
	if got := b.CellsOpenFor(row0, 9); len(got) != 7 {
		t.Fatalf("cells open for 9 = %d, want 7", len(got))
	}
	m := b.OpenCells(row0)
	if _, ok := m[1]; ok {
		t.Fatalf("open-cells map contains assigned digit")
	}
	if len(m[3]) != 7 {
		t.Fatalf("open cells for 3 = %d, want 7", len(m[3]))
	}
}

func TestRestoreUndoesAssignments(t *testing.T) {
	b, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	snap := b.Encode()
	b.At(0, 2).Set(4)
	b.At(0, 3).Set(6)
	b.Restore(snap)
	if b.Encode() != snap {
		t.Fatalf("restore did not reproduce the snapshot")
	}
}

func TestGroupMembership(t *testing.T) {
	b := New()
	for ci := 0; ci < CellCount; ci++ {
		gs := b.Cell(ci).Groups()
		r, c := ci/Size, ci%Size
		if gs[0] != r || gs[1] != Size+c {
			t.Fatalf("cell %d group indices = %v", ci, gs)
		}
		if gs[2] != 2*Size+(r/3)*3+c/3 {
			t.Fatalf("cell %d block group = %d", ci, gs[2])
		}
	}
}
