package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/brand-research/internal/competitors"
	"github.com/jonathan/brand-research/internal/fetch"
	"github.com/jonathan/brand-research/internal/llm"
	"github.com/jonathan/brand-research/internal/search"
)

// fakeLLM returns canned output and records what it was asked.
type fakeLLM struct {
	answer string
	err    error

	lastPrompt string
	lastTier   llm.ModelTier
	calls      int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	f.lastTier = tier
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return llm.CleanJSONBlock(f.answer), nil
}

func (f *fakeLLM) GetModel(tier llm.ModelTier) string { return "fake-model" }

func (f *fakeLLM) Close() error { return nil }

// newTestService builds a Service whose fetcher and search client point at
// throwaway HTTP servers, so no test touches the network.
func newTestService(t *testing.T, client llm.Client, searchHandler http.HandlerFunc) *Service {
	t.Helper()

	if searchHandler == nil {
		searchHandler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}
	}
	searchSrv := httptest.NewServer(searchHandler)
	t.Cleanup(searchSrv.Close)

	scrapeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"metadata": {"title": "Test Site"}, "markdown": "site content"}}`))
	}))
	t.Cleanup(scrapeSrv.Close)

	searchClient := search.NewClient("test-key")
	searchClient.Endpoint = searchSrv.URL

	tables, err := competitors.DefaultTables()
	require.NoError(t, err)

	return NewService(client, fetch.NewFetcher(scrapeSrv.URL), searchClient, competitors.NewExtractor(tables))
}
