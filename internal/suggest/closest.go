package suggest

import "sort"

// DefaultMinScore is the minimum normalized similarity for a candidate
// to be suggested at all.
const DefaultMinScore = 0.5

// Closest returns up to limit candidates ranked by descending similarity
// to name, dropping anything below DefaultMinScore. Ties break on
// candidate order for deterministic output.
func Closest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
		index int
	}

	var ranked []scored

	for i, c := range candidates {
		if s := Score(name, c); s >= DefaultMinScore {
			ranked = append(ranked, scored{name: c, score: s, index: i})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].index < ranked[j].index
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
