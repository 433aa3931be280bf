package match

import (
	"testing"
)

func TestScoreName(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name  string
		query string
		cand  string
		want  Score
	}{
		{"exact", "Trio", "Trio", ScoreExact},
		{"exact case-insensitive", "trio", "TRIO", ScoreExact},
		{"exact with padding", "  trio ", "Trio", ScoreExact},
		{"prefix", "mar", "Margherita", ScorePrefix},
		{"substring", "gher", "Margherita", ScoreSubstring},
		{"no match", "sushi", "Margherita", ScoreNone},
		{"empty query", "", "Margherita", ScoreNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ScoreName(tt.query, tt.cand)
			if got != tt.want {
				t.Errorf("ScoreName(%q, %q) = %v, want %v", tt.query, tt.cand, got, tt.want)
			}
		})
	}
}

func TestBestIndex(t *testing.T) {
	m := NewMatcher()
	names := []string{"Margherita", "Marinara", "Quattro Formaggi", "Trio", "Trio Deluxe"}

	tests := []struct {
		name      string
		query     string
		wantIdx   int
		wantScore Score
	}{
		{"exact beats prefix", "trio", 3, ScoreExact},
		{"prefix beats substring", "mar", 0, ScorePrefix},
		{"tie broken by order", "ma", 0, ScorePrefix}, // Margherita and Marinara both prefix-match
		{"substring only", "formaggi", 2, ScoreSubstring},
		{"no candidate", "burger", -1, ScoreNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, score := m.BestIndex(tt.query, names)
			if idx != tt.wantIdx || score != tt.wantScore {
				t.Errorf("BestIndex(%q) = (%d, %v), want (%d, %v)", tt.query, idx, score, tt.wantIdx, tt.wantScore)
			}
		})
	}
}
