package matching

import (
	"math"
	"testing"
)

// fixedScore is a Scorable with a predetermined score, for exercising the
// ranking logic in isolation from the scoring scheme.
type fixedScore float64

func (f fixedScore) MatchScore(terms []string) float64 { return float64(f) }

// fieldItem scores through ScoreFields like a real item would.
type fieldItem struct {
	name string
	path string
}

func (p fieldItem) MatchScore(terms []string) float64 {
	return ScoreFields(terms, p.name, p.path)
}

// TestRank tests ordering, exclusion and stability
func TestRank(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate[fixedScore]
		want       []string
	}{
		{
			name: "OrderedByScoreDescending",
			candidates: []Candidate[fixedScore]{
				{ID: "low", Item: 10},
				{ID: "high", Item: 90},
				{ID: "mid", Item: 50},
			},
			want: []string{"high", "mid", "low"},
		},
		{
			name: "ZeroAndNegativeExcluded",
			candidates: []Candidate[fixedScore]{
				{ID: "a", Item: 0},
				{ID: "b", Item: -5},
				{ID: "c", Item: 1},
			},
			want: []string{"c"},
		},
		{
			name: "TiesKeepInputOrder",
			candidates: []Candidate[fixedScore]{
				{ID: "first", Item: 50},
				{ID: "second", Item: 50},
				{ID: "third", Item: 50},
			},
			want: []string{"first", "second", "third"},
		},
		{
			name: "NaNTreatedAsNoMatch",
			candidates: []Candidate[fixedScore]{
				{ID: "nan", Item: fixedScore(math.NaN())},
				{ID: "ok", Item: 50},
			},
			want: []string{"ok"},
		},
		{
			name: "InfTreatedAsNoMatch",
			candidates: []Candidate[fixedScore]{
				{ID: "inf", Item: fixedScore(math.Inf(1))},
				{ID: "ok", Item: 50},
			},
			want: []string{"ok"},
		},
		{
			name:       "NoCandidates",
			candidates: nil,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.candidates, []string{"ignored"})

			if len(got) != len(tt.want) {
				t.Fatalf("Rank returned %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestRankWithScoreFields runs the ranker end to end over field-scored items
func TestRankWithScoreFields(t *testing.T) {
	candidates := []Candidate[fieldItem]{
		{ID: "a", Item: fieldItem{name: "Foo Bar", path: "/home/x/foo"}},
		{ID: "b", Item: fieldItem{name: "Baz", path: "/home/x/baz"}},
	}

	got := Rank(candidates, []string{"foo"})
	if len(got) != 1 || got[0] != "a" {
		t.Errorf(`Rank(terms=["foo"]) = %v, want ["a"]`, got)
	}

	got = Rank(candidates, []string{"zzz"})
	if len(got) != 0 {
		t.Errorf(`Rank(terms=["zzz"]) = %v, want []`, got)
	}

	// An exact name match must outrank a path substring match.
	got = Rank(candidates, []string{"baz"})
	if len(got) != 1 || got[0] != "b" {
		t.Errorf(`Rank(terms=["baz"]) = %v, want ["b"]`, got)
	}
}
