package match

import (
	"cmp"
	"slices"
)

// DefaultMinScore is the similarity a candidate needs before it is
// offered as a suggestion.
const DefaultMinScore = 0.6

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score.
type CandidateList []Candidate

// Rank scores every candidate against target on normalized names.
// Ties keep the input order.
func Rank(target string, candidates []string) CandidateList {
	norm := NormalizeIdent(target)

	out := make(CandidateList, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Candidate{Name: c, Score: Similarity(norm, NormalizeIdent(c))})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return out
}

// Best returns the top candidate if it scores at least minScore.
func (l CandidateList) Best(minScore float64) (Candidate, bool) {
	if len(l) == 0 || l[0].Score < minScore {
		return Candidate{}, false
	}

	return l[0], true
}

// Suggest returns the closest candidate to target, if any is close enough.
// An exact match is never suggested: the caller already knows it missed.
func Suggest(target string, candidates []string) (string, bool) {
	filtered := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != target {
			filtered = append(filtered, c)
		}
	}

	best, ok := Rank(target, filtered).Best(DefaultMinScore)
	if !ok {
		return "", false
	}

	return best.Name, true
}
