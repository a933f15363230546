// Package matching implements fuzzy term matching and ranking for search
// provider results.
//
// Items expose a single capability, the Scorable interface:
//
//	type Scorable interface {
//	    MatchScore(terms []string) float64
//	}
//
// A score of 0 or less means the item does not match; higher scores rank
// better, with 100 as the reference point for a perfect match.
//
// ScoreFields implements the standard scoring scheme over an item's display
// fields. Matching is case-insensitive and conjunctive: every term must occur
// in at least one field, otherwise the item is excluded entirely. Per-term
// strength is graded (exact field match > field prefix > word boundary >
// arbitrary substring) and the per-term grades are summed and normalized onto
// a 0-100 scale.
//
// Rank orders a candidate list by score:
//
//	ids := matching.Rank(candidates, terms)
//
// Candidates scoring 0 or less are dropped, the rest are sorted by score
// descending. The sort is stable, so candidates with equal scores keep their
// input order and identical inputs always produce identical output. Non-finite
// scores are a defect in the item's MatchScore implementation; Rank treats
// them as "no match" rather than letting them poison the sort order.
package matching
