package research

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/brand-research/internal/competitors"
	"github.com/jonathan/brand-research/internal/search"
	"github.com/jonathan/brand-research/internal/types"
)

// ResearchCompetitors discovers competitors through parallel web searches:
// synthesize queries from the brand context, run them through the bounded
// search pool, then extract and rank companies from the combined results.
// No LLM call is involved, which keeps this flow fast and cheap. Never
// returns an error.
func (s *Service) ResearchCompetitors(ctx context.Context, brandName, brandDescription, industry string, topics []string) types.CompetitorAnalysis {
	if s.extractor == nil || s.extractor.Tables == nil {
		position := "Error analyzing competitors: lookup tables not loaded"
		return types.CompetitorAnalysis{
			BrandName:      brandName,
			Industry:       industry,
			Competitors:    []types.CompetitorInfo{},
			MarketPosition: &position,
		}
	}

	queries := competitors.SynthesizeQueries(brandName, brandDescription, industry, topics)
	log.Printf("competitor research: %d queries for %q", len(queries), brandName)

	responses := s.search.SearchAll(ctx, queries, search.DefaultMaxWorkers)

	successful := 0
	for _, r := range responses {
		if r.Error == "" {
			successful++
		}
	}
	log.Printf("competitor research: %d/%d searches succeeded", successful, len(queries))

	found := s.extractor.Extract(brandName, topics, responses)
	log.Printf("competitor research: %d potential competitors for %q", len(found), brandName)

	var position string
	switch {
	case len(found) > 7:
		position = "Competitive market with many established players"
	case len(found) > 3:
		position = "Moderately competitive market"
	default:
		position = "Emerging market with limited competition"
	}

	landscapeTopics := topics
	if len(landscapeTopics) > 3 {
		landscapeTopics = landscapeTopics[:3]
	}
	landscape := fmt.Sprintf("Found %d competitors in %s space across topics: %s",
		len(found), industry, strings.Join(landscapeTopics, ", "))

	return types.CompetitorAnalysis{
		BrandName:            brandName,
		Industry:             industry,
		Competitors:          found,
		MarketPosition:       &position,
		CompetitiveLandscape: &landscape,
	}
}
