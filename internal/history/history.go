// Package history owns the search history: a bounded, de-duplicated,
// most-recent-first list of queries and the repositories that persist it.
//
// Every stored form uses the same layout as the browser page: a JSON array
// of strings under the key domain.StorageKey.
package history

import (
	"encoding/json"
	"fmt"
	"strings"

	"rodrierr/internal/domain"
)

// SearchHistory is an ordered list of queries, most recent first.
type SearchHistory []string

// Clone returns an independent copy that is never nil.
func (h SearchHistory) Clone() SearchHistory {
	out := make(SearchHistory, len(h))
	copy(out, h)
	return out
}

// Index returns the position of q, or -1.
func (h SearchHistory) Index(q string) int {
	for i, s := range h {
		if s == q {
			return i
		}
	}
	return -1
}

// Insert returns h with q trimmed, moved to the front and the list capped at
// limit. ok is false when q is blank, in which case h is returned unchanged.
func Insert(h SearchHistory, q string, limit int) (out SearchHistory, ok bool) {
	q = strings.TrimSpace(q)
	if q == "" {
		return h, false
	}
	if limit <= 0 {
		limit = domain.MaxHistory
	}
	out = make(SearchHistory, 0, min(len(h)+1, limit))
	out = append(out, q)
	for _, s := range h {
		if s == q {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, s)
	}
	return out, true
}

// Normalize enforces the history invariants on data read from storage:
// blank entries and repeats are dropped and the list is capped at limit.
func Normalize(h SearchHistory, limit int) SearchHistory {
	if limit <= 0 {
		limit = domain.MaxHistory
	}
	seen := make(map[string]struct{}, len(h))
	out := make(SearchHistory, 0, min(len(h), limit))
	for _, s := range h {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Encode renders h as a JSON array. An empty history encodes as [].
func Encode(h SearchHistory) ([]byte, error) {
	if h == nil {
		h = SearchHistory{}
	}
	data, err := json.Marshal([]string(h))
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of strings. Anything else is an error.
func Decode(data []byte) (SearchHistory, error) {
	var h []string
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if h == nil {
		return SearchHistory{}, nil
	}
	return SearchHistory(h), nil
}
