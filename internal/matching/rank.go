package matching

import (
	"log/slog"
	"math"
	"sort"
)

// Candidate pairs a result ID with the item it identifies.
type Candidate[T Scorable] struct {
	ID   string
	Item T
}

// scored is a candidate that survived scoring.
type scored struct {
	id    string
	score float64
}

// Rank scores every candidate against terms and returns the IDs of all
// matching candidates ordered by score, best first.
//
// Candidates with a score of 0 or less are dropped. A non-finite score is
// treated the same way: float comparison is not a total order in the presence
// of NaN, so a defective score must never reach the sort. Ties keep the
// candidates' input order.
func Rank[T Scorable](candidates []Candidate[T], terms []string) []string {
	matches := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score := c.Item.MatchScore(terms)
		if math.IsNaN(score) || math.IsInf(score, 0) {
			slog.Warn("dropping candidate with non-finite match score",
				"id", c.ID, "score", score)
			continue
		}
		if score <= 0 {
			continue
		}
		matches = append(matches, scored{id: c.ID, score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.id
	}
	return ids
}
