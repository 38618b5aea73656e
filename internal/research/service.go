// Package research orchestrates the brand, product, competitor, and prompt
// research flows. Every entry point returns a usable record: failures are
// folded into fallback values rather than surfaced as errors, so callers can
// always hand a result downstream.
package research

import (
	"github.com/jonathan/brand-research/internal/competitors"
	"github.com/jonathan/brand-research/internal/fetch"
	"github.com/jonathan/brand-research/internal/llm"
	"github.com/jonathan/brand-research/internal/search"
)

// Service wires the LLM, web fetcher, search client, and competitor
// extractor into the research flows.
type Service struct {
	llm       llm.Client
	fetcher   *fetch.Fetcher
	search    *search.Client
	extractor *competitors.Extractor
}

// NewService creates a research service from its dependencies.
func NewService(client llm.Client, fetcher *fetch.Fetcher, searchClient *search.Client, extractor *competitors.Extractor) *Service {
	return &Service{
		llm:       client,
		fetcher:   fetcher,
		search:    searchClient,
		extractor: extractor,
	}
}
