// Package search wraps the SerpAPI Google search endpoint.
// Failures are normalized into the Response value rather than returned as Go
// errors: a missing API key, a transport failure, and a decode failure all
// produce a Response with the Error field set and an empty result list, so a
// single bad query can never abort a research run.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultEndpoint is the SerpAPI search endpoint.
const DefaultEndpoint = "https://serpapi.com/search.json"

// DefaultTimeout bounds a single search call.
const DefaultTimeout = 30 * time.Second

// maxOrganicResults caps how many organic results are extracted per query.
const maxOrganicResults = 10

// Client calls the search API.
type Client struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient creates a search client. An empty API key is allowed; searches
// then fail fast with an explicit error string in the response.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Endpoint:   DefaultEndpoint,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Result is a single extracted search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// Response holds the outcome of one query: either results or an error string,
// always tagged with the originating query.
type Response struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
	Error   string   `json:"error,omitempty"`
}

// payload mirrors the fields we consume from the search API reply.
type payload struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
		Source  string `json:"source"`
	} `json:"organic_results"`
	KnowledgeGraph *struct {
		Title       string `json:"title"`
		Type        string `json:"type"`
		Website     string `json:"website"`
		Description string `json:"description"`
	} `json:"knowledge_graph"`
	ImmersiveProducts []struct {
		Title   string  `json:"title"`
		Source  string  `json:"source"`
		Price   string  `json:"price"`
		Rating  float64 `json:"rating"`
		Reviews int     `json:"reviews"`
	} `json:"immersive_products"`
	RelatedQuestions []struct {
		Question   string `json:"question"`
		Snippet    string `json:"snippet"`
		TextBlocks []struct {
			Type    string `json:"type"`
			Snippet string `json:"snippet"`
		} `json:"text_blocks"`
	} `json:"related_questions"`
}

// Search executes one query and extracts up to maxOrganicResults organic
// results. A knowledge graph entry with a title is prepended to the list.
// num limits the requested result count when positive.
func (c *Client) Search(ctx context.Context, query string, num int) Response {
	data, err := c.do(ctx, query, num)
	if err != nil {
		return Response{Query: query, Results: []Result{}, Error: err.Error()}
	}

	results := make([]Result, 0, len(data.OrganicResults)+1)
	for i, r := range data.OrganicResults {
		if i >= maxOrganicResults {
			break
		}
		results = append(results, Result{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
			Source:  r.Source,
		})
	}

	if kg := data.KnowledgeGraph; kg != nil && kg.Title != "" {
		results = append([]Result{{
			Title:   kg.Title,
			Link:    kg.Website,
			Snippet: kg.Description,
			Source:  "knowledge_graph",
		}}, results...)
	}

	return Response{Query: query, Results: results}
}

// do performs the HTTP call and decodes the raw payload.
func (c *Client) do(ctx context.Context, query string, num int) (*payload, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("SERPAPI_API_KEY not configured")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.APIKey)
	params.Set("engine", "google")
	if num > 0 {
		params.Set("num", strconv.Itoa(num))
	}

	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	var data payload
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return &data, nil
}
