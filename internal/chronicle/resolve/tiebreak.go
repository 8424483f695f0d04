package resolve

import (
	"strings"
	"unicode/utf8"
)

// Candidate is one possible winner for an ambiguous reference.
type Candidate struct {
	ID    string
	Label string
}

// PickBest selects a single deterministic winner from candidates. The order
// is total: a longer label ranks first (a longer name is less likely to be a
// false positive), equal lengths fall back to case-insensitive lexicographic
// order, and equal labels fall back to ascending ID. The result does not
// depend on input ordering. PickBest reports false only for empty input.
func PickBest(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if ranksAbove(candidate, best) {
			best = candidate
		}
	}
	return best, true
}

func ranksAbove(a, b Candidate) bool {
	aLen := utf8.RuneCountInString(a.Label)
	bLen := utf8.RuneCountInString(b.Label)
	if aLen != bLen {
		return aLen > bLen
	}
	aLabel := strings.ToLower(a.Label)
	bLabel := strings.ToLower(b.Label)
	if aLabel != bLabel {
		return aLabel < bLabel
	}
	return a.ID < b.ID
}
