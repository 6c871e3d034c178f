package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ACH_DEBIT", "achdebit"},
		{"ach-debit", "achdebit"},
		{"AchDebit", "achdebit"},
		{"wire transfer", "wiretransfer"},
		{"v1.2", "v12"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"conditonal", "conditional", 1},
		{"größe", "grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.5, Similarity("ab", "ax"), 1e-9)
}

func TestRank(t *testing.T) {
	list := Rank("WIRE_OUT", []string{"ACH_DEBIT", "WIRE_IN", "wire-out"})
	require.Len(t, list, 3)
	assert.Equal(t, "wire-out", list[0].Name)
	assert.InDelta(t, 1.0, list[0].Score, 1e-9)
	assert.Equal(t, "WIRE_IN", list[1].Name)

	best, ok := list.Best(DefaultMinScore)
	require.True(t, ok)
	assert.Equal(t, "wire-out", best.Name)

	_, ok = CandidateList{}.Best(0)
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	kinds := []string{"source", "constant", "conditional", "composite"}

	got, ok := Suggest("conditonal", kinds)
	require.True(t, ok)
	assert.Equal(t, "conditional", got)

	got, ok = Suggest("Constant", kinds)
	require.True(t, ok)
	assert.Equal(t, "constant", got)

	_, ok = Suggest("bogus", kinds)
	assert.False(t, ok)

	_, ok = Suggest("source", []string{"source"})
	assert.False(t, ok)
}
