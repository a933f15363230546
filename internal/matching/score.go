package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scorable is the capability an item must provide to be matched against
// search terms.
type Scorable interface {
	// MatchScore matches the item against terms and returns a score for how
	// well it matches. A score of 0 or less means no match; higher is better,
	// and 100 should be considered a perfect match.
	MatchScore(terms []string) float64
}

// Per-term match grades. A term's grade is the strongest match it achieves
// across all fields.
const (
	gradeExact     = 1.0
	gradePrefix    = 0.75
	gradeBoundary  = 0.5
	gradeSubstring = 0.25
)

// ScoreFields scores an ordered term list against an item's searchable
// fields. Every term must match at least one field or the result is 0; the
// per-term grades are summed and normalized so that an exact match of every
// term scores 100.
func ScoreFields(terms []string, fields ...string) float64 {
	if len(terms) == 0 {
		return 0
	}

	folded := make([]string, len(fields))
	for i, f := range fields {
		folded[i] = strings.ToLower(f)
	}

	total := 0.0
	for _, term := range terms {
		term = strings.ToLower(term)
		if term == "" {
			continue
		}

		grade := 0.0
		for _, field := range folded {
			if g := gradeTerm(term, field); g > grade {
				grade = g
			}
			if grade == gradeExact {
				break
			}
		}
		if grade == 0 {
			// Conjunctive matching: one missing term excludes the item.
			return 0
		}
		total += grade
	}

	return 100 * total / float64(len(terms))
}

// gradeTerm returns the match grade of a single folded term against a single
// folded field, or 0 if the term does not occur in the field.
func gradeTerm(term, field string) float64 {
	idx := strings.Index(field, term)
	if idx < 0 {
		return 0
	}
	if len(term) == len(field) {
		return gradeExact
	}
	if idx == 0 {
		return gradePrefix
	}
	if startsWord(field, term) {
		return gradeBoundary
	}
	return gradeSubstring
}

// startsWord reports whether term occurs in field immediately after a
// non-alphanumeric rune.
func startsWord(field, term string) bool {
	for off := 0; ; {
		idx := strings.Index(field[off:], term)
		if idx < 0 {
			return false
		}
		pos := off + idx
		if pos > 0 {
			prev, _ := utf8.DecodeLastRuneInString(field[:pos])
			if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
				return true
			}
		}
		off = pos + 1
		if off >= len(field) {
			return false
		}
	}
}
