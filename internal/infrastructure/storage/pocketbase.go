package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/habibrosyad/pocketbase-go-sdk"

	"svw.info/sudoku-solver/internal/domain"
)

// PocketBase stores puzzles in a remote PocketBase collection. Credentials
// come from the environment (see cmd); the record keeps the grid payload as
// a JSON string column next to filterable metadata columns.
type PocketBase struct {
	client     *pocketbase.Client
	collection string
}

// pbPayload is the JSON stored in the record's "puzzle" column.
type pbPayload struct {
	Encoding string `json:"encoding"`
	Solution string `json:"solution,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

func NewPocketBase(url, email, password string) *PocketBase {
	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(email, password))
	return &PocketBase{client: client, collection: "puzzles"}
}

// Authorize authenticates the client, retrying transient failures with
// exponential backoff.
func (s *PocketBase) Authorize(ctx context.Context) error {
	op := func() error { return s.client.Authorize() }
	return backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx))
}

func (s *PocketBase) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("invalid puzzle: missing ID")
	}
	body, err := json.Marshal(pbPayload{
		Encoding: p.Encoding,
		Solution: p.Solution,
		Seed:     p.Seed,
		Notes:    p.Notes,
	})
	if err != nil {
		return fmt.Errorf("marshal puzzle payload: %w", err)
	}
	data := map[string]any{
		"id":         p.ID,
		"puzzle":     string(body),
		"difficulty": p.Difficulty.String(),
		"name":       p.Name,
	}
	if _, err := s.client.Create(s.collection, data); err != nil {
		return fmt.Errorf("upload puzzle %s: %w", p.ID, err)
	}
	return nil
}

func (s *PocketBase) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	rec, err := s.client.One(s.collection, id)
	if err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	raw, _ := rec["puzzle"].(string)
	var payload pbPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode puzzle %s payload: %w", id, err)
	}
	name, _ := rec["name"].(string)
	diff, _ := rec["difficulty"].(string)
	return &domain.Puzzle{
		ID:         id,
		Seed:       payload.Seed,
		Difficulty: domain.ParseDifficulty(diff),
		Encoding:   payload.Encoding,
		Solution:   payload.Solution,
		Name:       name,
		Notes:      payload.Notes,
	}, nil
}

func (s *PocketBase) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	params := pocketbase.ParamsList{
		Page: 1,
		Size: 200,
		Sort: "-created",
	}
	res, err := s.client.List(s.collection, params)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	out := make([]domain.PuzzleMeta, 0, len(res.Items))
	for _, rec := range res.Items {
		id, _ := rec["id"].(string)
		if strings.TrimSpace(id) == "" {
			continue
		}
		name, _ := rec["name"].(string)
		diff, _ := rec["difficulty"].(string)
		out = append(out, domain.PuzzleMeta{
			ID:         id,
			Name:       name,
			Difficulty: domain.ParseDifficulty(diff),
		})
	}
	return out, nil
}

// Exists reports whether a record with the given ID is present.
func (s *PocketBase) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := s.client.One(s.collection, id); err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
