package research

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-research/internal/search"
)

func TestResearchCompetitors_EndToEnd(t *testing.T) {
	client := &fakeLLM{}
	svc := newTestService(t, client, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"organic_results": [
				{"title": "Best USMLE resources", "link": "https://blog.example/usmle", "snippet": "UWorld and Amboss lead the pack."}
			]
		}`)
	})

	analysis := svc.ResearchCompetitors(context.Background(), "MedPrep",
		"A USMLE question bank", "medical education", []string{"test prep", "flashcards"})

	assert.Equal(t, "MedPrep", analysis.BrandName)
	assert.Equal(t, "medical education", analysis.Industry)
	require.NotEmpty(t, analysis.Competitors)

	names := make([]string, 0, len(analysis.Competitors))
	for _, c := range analysis.Competitors {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "UWorld")
	assert.Contains(t, names, "Amboss")

	require.NotNil(t, analysis.CompetitiveLandscape)
	assert.Contains(t, *analysis.CompetitiveLandscape, "medical education space")
	assert.Contains(t, *analysis.CompetitiveLandscape, "test prep, flashcards")

	assert.Zero(t, client.calls, "competitor discovery must not call the LLM")
}

func TestResearchCompetitors_MarketPositionThresholds(t *testing.T) {
	tests := []struct {
		domains int
		want    string
	}{
		{1, "Emerging market with limited competition"},
		{5, "Moderately competitive market"},
		{9, "Competitive market with many established players"},
	}

	for _, tt := range tests {
		client := &fakeLLM{}
		svc := newTestService(t, client, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"organic_results": [`)
			for i := 0; i < tt.domains; i++ {
				if i > 0 {
					fmt.Fprint(w, ",")
				}
				fmt.Fprintf(w, `{"title": "test prep pick", "link": "https://company%d.com/", "snippet": "test prep"}`, i)
			}
			fmt.Fprint(w, `]}`)
		})

		analysis := svc.ResearchCompetitors(context.Background(), "MedPrep", "", "test prep", []string{"test prep"})

		require.NotNil(t, analysis.MarketPosition)
		assert.Equal(t, tt.want, *analysis.MarketPosition, "with %d competitors", tt.domains)
	}
}

func TestResearchCompetitors_AllSearchesFailStillReturnsAnalysis(t *testing.T) {
	client := &fakeLLM{}
	svc := newTestService(t, client, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	analysis := svc.ResearchCompetitors(context.Background(), "MedPrep", "", "test prep", nil)

	assert.Empty(t, analysis.Competitors)
	require.NotNil(t, analysis.MarketPosition)
	assert.Equal(t, "Emerging market with limited competition", *analysis.MarketPosition)
}

func TestResearchCompetitors_MissingTables(t *testing.T) {
	svc := NewService(&fakeLLM{}, nil, search.NewClient(""), nil)

	analysis := svc.ResearchCompetitors(context.Background(), "MedPrep", "", "test prep", nil)

	assert.Empty(t, analysis.Competitors)
	require.NotNil(t, analysis.MarketPosition)
	assert.Contains(t, *analysis.MarketPosition, "Error analyzing competitors:")
}
