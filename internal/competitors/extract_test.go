package competitors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-research/internal/search"
)

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	tables, err := DefaultTables()
	require.NoError(t, err)
	return NewExtractor(tables)
}

func TestExtract_KnownCompetitorFromSnippet(t *testing.T) {
	e := testExtractor(t)

	responses := []search.Response{{
		Query: "best USMLE apps 2024",
		Results: []search.Result{{
			Title:   "Top 10 USMLE prep resources",
			Link:    "https://blog.example/usmle",
			Snippet: "UWorld remains the gold standard question bank for Step 1.",
		}},
	}}

	competitors := e.Extract("MedPrep", []string{"test prep"}, responses)

	require.NotEmpty(t, competitors)
	found := false
	for _, c := range competitors {
		if c.Name == "UWorld" {
			found = true
			require.NotNil(t, c.Website)
			assert.Equal(t, "https://www.uworld.com", *c.Website)
			assert.Equal(t, "test preparation", c.SimilarityReason)
		}
	}
	assert.True(t, found, "UWorld should be recognized from the snippet mention")
}

func TestExtract_MentionCountRanksFirst(t *testing.T) {
	e := testExtractor(t)

	mention := func(snippet string) search.Response {
		return search.Response{Results: []search.Result{{Title: "t", Snippet: snippet}}}
	}

	responses := []search.Response{
		mention("Anki flashcards"),
		mention("Anki decks for Step 1"),
		mention("Anki is free"),
		mention("Quizlet study sets"),
	}

	competitors := e.Extract("MedPrep", nil, responses)

	require.GreaterOrEqual(t, len(competitors), 2)
	assert.Equal(t, "Anki", competitors[0].Name, "most-mentioned competitor ranks first")
}

func TestExtract_ExcludedDomainsNeverAppear(t *testing.T) {
	e := testExtractor(t)

	responses := []search.Response{{
		Results: []search.Result{
			{Title: "test prep thread", Link: "https://www.reddit.com/r/step1", Snippet: "test prep discussion"},
			{Title: "test prep rankings", Link: "https://www.forbes.com/rankings", Snippet: "test prep picks"},
			{Title: "test prep tool", Link: "https://www.medquest.com/", Snippet: "test prep software"},
		},
	}}

	competitors := e.Extract("MedPrep", []string{"test prep"}, responses)

	for _, c := range competitors {
		assert.NotEqual(t, "Reddit", c.Name)
		assert.NotEqual(t, "Forbes", c.Name)
	}
	require.Len(t, competitors, 1)
	assert.Equal(t, "Medquest", competitors[0].Name)
	require.NotNil(t, competitors[0].Website)
	assert.Equal(t, "https://www.medquest.com", *competitors[0].Website)
}

func TestExtract_DomainRequiresTopicMatch(t *testing.T) {
	e := testExtractor(t)

	responses := []search.Response{{
		Results: []search.Result{
			{Title: "unrelated article", Link: "https://somecompany.com/post", Snippet: "nothing relevant"},
		},
	}}

	competitors := e.Extract("MedPrep", []string{"test prep"}, responses)
	assert.Empty(t, competitors, "domains with no topic relevance are dropped")
}

func TestExtract_OwnBrandExcluded(t *testing.T) {
	e := testExtractor(t)

	responses := []search.Response{{
		Results: []search.Result{
			{Title: "UWorld question bank review", Link: "https://www.uworld.com/", Snippet: "UWorld question bank"},
		},
	}}

	competitors := e.Extract("UWorld", []string{"question bank"}, responses)
	for _, c := range competitors {
		assert.NotEqual(t, "UWorld", c.Name)
		assert.NotEqual(t, "Uworld", c.Name)
	}
}

func TestExtract_CapsAtTenAndTruncatesDescriptions(t *testing.T) {
	e := testExtractor(t)

	longSnippet := strings.Repeat("test prep tools ", 20) // well over 150 chars

	var results []search.Result
	domains := []string{
		"alphaprep", "betaprep", "gammaprep", "deltaprep", "epsilonprep",
		"zetaprep", "etaprep", "thetaprep", "iotaprep", "kappaprep",
		"lambdaprep", "muprep",
	}
	for _, d := range domains {
		results = append(results, search.Result{
			Title:   "test prep review",
			Link:    "https://" + d + ".com/",
			Snippet: longSnippet,
		})
	}

	competitors := e.Extract("MedPrep", []string{"test prep"}, []search.Response{{Results: results}})

	assert.Len(t, competitors, maxCompetitors)
	for _, c := range competitors {
		assert.LessOrEqual(t, len(c.Description), maxDescriptionLength)
		assert.True(t, strings.HasSuffix(c.Description, "..."))
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := testExtractor(t)

	responses := []search.Response{{
		Results: []search.Result{
			{Title: "Kaplan vs Sketchy vs Osmosis", Snippet: "kaplan sketchy osmosis compared", Link: "https://compare.example/a"},
			{Title: "test prep picks", Link: "https://zprep.com/", Snippet: "test prep"},
			{Title: "test prep picks", Link: "https://aprep.com/", Snippet: "test prep"},
		},
	}}

	first := e.Extract("MedPrep", []string{"test prep"}, responses)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Extract("MedPrep", []string{"test prep"}, responses))
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"uworld", "Uworld"},
		{"boards-beyond", "Boards-Beyond"},
		{"ALLCAPS", "Allcaps"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in))
	}
}
