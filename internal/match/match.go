// Package match ranks candidate labels against a query.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Provider returns the candidates matching query, best first. Implementations
// must be pure and return a subsequence of candidates, possibly reordered.
type Provider interface {
	Match(query string, candidates []string) []string
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(query string, candidates []string) []string

func (f ProviderFunc) Match(query string, candidates []string) []string {
	return f(query, candidates)
}

// Fuzzy matches query characters in order, ignoring case and diacritics.
// Results are ordered by edit distance, then label, then original position.
// An empty query returns every candidate sorted by label.
type Fuzzy struct{}

func (Fuzzy) Match(query string, candidates []string) []string {
	if query == "" {
		out := append([]string(nil), candidates...)
		sort.SliceStable(out, func(i, j int) bool { return out[i] < out[j] })
		return out
	}
	ranks := fuzzy.RankFindNormalizedFold(query, candidates)
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Target != b.Target {
			return a.Target < b.Target
		}
		return a.OriginalIndex < b.OriginalIndex
	})
	out := make([]string, len(ranks))
	for i, rank := range ranks {
		out[i] = rank.Target
	}
	return out
}

// Substring keeps candidates that contain query literally, in their original
// order.
type Substring struct {
	CaseSensitive bool
}

func (s Substring) Match(query string, candidates []string) []string {
	needle := query
	if !s.CaseSensitive {
		needle = strings.ToLower(query)
	}
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		hay := candidate
		if !s.CaseSensitive {
			hay = strings.ToLower(candidate)
		}
		if strings.Contains(hay, needle) {
			out = append(out, candidate)
		}
	}
	return out
}

// Names lists the providers available through ByName.
func Names() []string {
	return []string{"fuzzy", "substring"}
}

// ByName resolves a provider from configuration.
func ByName(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fuzzy":
		return Fuzzy{}, nil
	case "substring":
		return Substring{}, nil
	}
	return nil, fmt.Errorf("unknown matcher %q (want one of %s)", name, strings.Join(Names(), ", "))
}

// Truncate keeps at most limit leading matches. A limit <= 0 keeps everything.
func Truncate(matches []string, limit int) []string {
	if limit <= 0 || len(matches) <= limit {
		return matches
	}
	return matches[:limit]
}
