package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"svw.info/sudoku-solver/internal/generator"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

const (
	sample = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	solved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	eng := solver.Factory{}
	uc := usecase.NewService(
		eng,
		generator.NewUniqueGenerator(eng),
		validator.New(),
		hint.New(),
		storage.NewFS(t.TempDir()),
		nil,
	)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) (*http.Response, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, buf.Bytes()
}

func TestHandleSolve(t *testing.T) {
	srv := testServer(t)

	resp, body := postJSON(t, srv.URL+"/api/solve", solveReq{Puzzle: sample})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	var out solveResp
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Solved != solved {
		t.Fatalf("solved = %q, want %q", out.Solved, solved)
	}
}

func TestHandleSolveBadInput(t *testing.T) {
	srv := testServer(t)

	cases := []struct {
		name   string
		puzzle string
		status int
	}{
		{"too short", sample[:80], http.StatusBadRequest},
		{"invalid characters", "x" + sample[1:], http.StatusBadRequest},
		{"conflicting clues", sample[:4] + "3" + sample[5:], http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := postJSON(t, srv.URL+"/api/solve", solveReq{Puzzle: tc.puzzle})
			if resp.StatusCode != tc.status {
				t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, tc.status, body)
			}
		})
	}
}

func TestHandleSolveMethodNotAllowed(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/solve")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHandleValidate(t *testing.T) {
	srv := testServer(t)

	resp, body := postJSON(t, srv.URL+"/api/validate", validateReq{Puzzle: sample[:4] + "3" + sample[5:]})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out validateResp
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.OK || len(out.Conflicts) == 0 {
		t.Fatalf("duplicate clue not flagged: %+v", out)
	}
}

func TestHandleHint(t *testing.T) {
	srv := testServer(t)

	resp, body := postJSON(t, srv.URL+"/api/hint", hintReq{Puzzle: sample})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out hintResp
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Found || out.Hint == nil || out.Hint.Digit == 0 {
		t.Fatalf("expected a hint, got %+v", out)
	}
}

func TestSaveLoadList(t *testing.T) {
	srv := testServer(t)

	resp, body := postJSON(t, srv.URL+"/api/save", map[string]any{
		"id":       "t1",
		"encoding": sample,
		"name":     "classic",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d, body %s", resp.StatusCode, body)
	}

	getResp, err := http.Get(srv.URL + "/api/load?id=t1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer getResp.Body.Close()
	var out loadResp
	if err := json.NewDecoder(getResp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Puzzle == nil || out.Puzzle.Encoding != sample {
		t.Fatalf("loaded puzzle = %+v", out)
	}

	listResp2, err := http.Get(srv.URL + "/api/list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defer listResp2.Body.Close()
	var lr listResp
	if err := json.NewDecoder(listResp2.Body).Decode(&lr); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(lr.Puzzles) != 1 || lr.Puzzles[0].ID != "t1" {
		t.Fatalf("list = %+v", lr)
	}
}
