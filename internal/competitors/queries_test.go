package competitors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeQueries_CapsAtEight(t *testing.T) {
	queries := SynthesizeQueries(
		"MedPrep",
		"A USMLE Step 1 question bank platform for medical school",
		"medical education",
		[]string{"test prep", "flashcards", "tutoring", "videos"},
	)

	require.LessOrEqual(t, len(queries), maxQueries)
	assert.Len(t, queries, maxQueries, "rich context should fill the batch")
}

func TestSynthesizeQueries_KeywordQueriesFirst(t *testing.T) {
	queries := SynthesizeQueries("MedPrep", "A USMLE question bank", "medical education", nil)

	require.NotEmpty(t, queries)
	assert.Equal(t, "best USMLE apps 2024", queries[0])
	assert.Equal(t, "USMLE alternatives", queries[1])
}

func TestSynthesizeQueries_IndustryAndBrandQueries(t *testing.T) {
	queries := SynthesizeQueries("MedPrep", "", "medical education", nil)

	assert.Contains(t, queries, "medical education market leaders 2024")
	assert.Contains(t, queries, "top medical education startups")
	assert.Contains(t, queries, "MedPrep alternatives")
	assert.Contains(t, queries, "apps like MedPrep")
}

func TestSynthesizeQueries_ShortBrandNameSkipsBrandQueries(t *testing.T) {
	queries := SynthesizeQueries("Ab", "", "retail", nil)

	for _, q := range queries {
		assert.NotContains(t, q, "Ab ", "short brand names are too ambiguous for alternatives queries")
	}
	assert.NotContains(t, queries, "apps like Ab")
}

func TestSynthesizeQueries_DedupesCaseInsensitively(t *testing.T) {
	// Brand "USMLE" collides with the keyword query "USMLE alternatives".
	queries := SynthesizeQueries("usmle", "A USMLE question bank", "test prep", nil)

	seen := map[string]int{}
	for _, q := range queries {
		seen[strings.ToLower(q)]++
	}
	for q, n := range seen {
		assert.Equal(t, 1, n, "query %q appears %d times", q, n)
	}
}
