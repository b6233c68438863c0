// Package suggest computes autocomplete suggestions from the search history
// merged with the built-in topic list.
package suggest

import (
	"strings"

	"rodrierr/internal/domain"
)

// Engine produces suggestion lists for the current input.
type Engine struct {
	base  []string
	limit int
}

// NewEngine creates an engine over the given base pool. A nil base uses the
// built-in topics; a limit <= 0 uses domain.MaxSuggestions.
func NewEngine(base []string, limit int) *Engine {
	if base == nil {
		base = domain.BaseSuggestions()
	}
	if limit <= 0 {
		limit = domain.MaxSuggestions
	}
	return &Engine{
		base:  append([]string(nil), base...),
		limit: limit,
	}
}

// Suggest merges history with the base pool and filters it by input.
func (e *Engine) Suggest(input string, history []string) []string {
	return FilterN(input, CombinedPool(history, e.base), e.limit)
}

// CombinedPool returns history followed by base with exact duplicates removed,
// keeping the first occurrence. Case differences are distinct entries.
func CombinedPool(history, base []string) []string {
	seen := make(map[string]struct{}, len(history)+len(base))
	pool := make([]string, 0, len(history)+len(base))
	for _, list := range [][]string{history, base} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			pool = append(pool, s)
		}
	}
	return pool
}

// Filter returns at most domain.MaxSuggestions pool entries containing input.
func Filter(input string, pool []string) []string {
	return FilterN(input, pool, domain.MaxSuggestions)
}

// FilterN returns the first limit pool entries that contain input,
// ignoring case. The raw input is used as is; an empty input matches nothing.
func FilterN(input string, pool []string, limit int) []string {
	if input == "" || limit <= 0 {
		return []string{}
	}
	needle := strings.ToLower(input)
	out := make([]string, 0, limit)
	for _, s := range pool {
		if !strings.Contains(strings.ToLower(s), needle) {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
