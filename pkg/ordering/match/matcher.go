package match

import "strings"

// Score ranks how well a candidate name matches a query. Higher is better.
type Score int

const (
	ScoreNone Score = iota
	ScoreSubstring
	ScorePrefix
	ScoreExact
)

// Matcher resolves free-text names against an ordered candidate list:
// exact case-insensitive match beats prefix match beats substring match,
// and ties go to the earliest candidate.
type Matcher struct{}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// ScoreName computes the match score of a single candidate.
func (m *Matcher) ScoreName(query, name string) Score {
	q := strings.ToLower(strings.TrimSpace(query))
	n := strings.ToLower(strings.TrimSpace(name))
	if q == "" || n == "" {
		return ScoreNone
	}
	switch {
	case n == q:
		return ScoreExact
	case strings.HasPrefix(n, q):
		return ScorePrefix
	case strings.Contains(n, q):
		return ScoreSubstring
	default:
		return ScoreNone
	}
}

// BestIndex returns the index of the best-matching name, or -1 when nothing
// matches. Candidates must be passed in their canonical order (catalog
// position, draft line order) so tie-breaks are deterministic.
func (m *Matcher) BestIndex(query string, names []string) (int, Score) {
	bestIdx := -1
	bestScore := ScoreNone
	for i, name := range names {
		score := m.ScoreName(query, name)
		if score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	return bestIdx, bestScore
}
