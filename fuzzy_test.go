package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyScorer(t *testing.T) {
	t.Parallel()

	score := FuzzyScorer[string]()

	_, ok := score("xyz", "Morango", "Morango", 0)
	assert.False(t, ok)

	adjacent, ok := score("man", "Manga", "Manga", 0)
	require.True(t, ok)
	spread, ok := score("man", "Morango", "Morango", 0)
	require.True(t, ok)
	assert.Greater(t, adjacent, spread, "consecutive matches rank higher")
}

func TestFuzzySuggester(t *testing.T) {
	t.Parallel()

	suggest := NewFuzzySuggester([]string{"git status", "git commit", "docker run", "kubectl get"})

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty input", "", nil},
		{"spread match", "gs", []string{"git status"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := suggest(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
