// Package source fetches puzzle collections from remote HTTP endpoints.
// Collections are plain text: one encoding per line, #-comments allowed.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"svw.info/sudoku-solver/internal/board"
)

// HTTP downloads puzzle lists with a shared resty client.
type HTTP struct {
	client *resty.Client
}

func NewHTTP(baseURL string) *HTTP {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(2)
	return &HTTP{client: client}
}

// Fetch downloads the collection at path and returns the normalized
// 81-character encodings it contains. Lines that fail normalization abort
// the fetch so a half-broken collection is never partially imported.
func (s *HTTP) Fetch(ctx context.Context, path string) ([]string, error) {
	resp, err := s.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: status %d", path, resp.StatusCode())
	}

	var out []string
	for i, line := range strings.Split(string(resp.Body()), "\n") {
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		enc, err := board.Normalize(trimmed)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: line %d: %w", path, i+1, err)
		}
		out = append(out, enc)
	}
	return out, nil
}
