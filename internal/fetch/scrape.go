// Package fetch - scrape.go is the client for the managed scrape service
// (a Firecrawl-compatible API). It is the primary content source; the direct
// HTTP path in fetch.go is the fallback.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultScrapeTimeout bounds a single scrape call. The service renders pages
// server-side, so it is slower than a plain GET.
const DefaultScrapeTimeout = 60 * time.Second

// DefaultScrapeURL is the default base URL for a locally running scrape service.
const DefaultScrapeURL = "http://localhost:3002"

// ScrapeClient talks to the scrape service.
type ScrapeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewScrapeClient creates a scrape client for the given base URL.
func NewScrapeClient(baseURL string) *ScrapeClient {
	if baseURL == "" {
		baseURL = DefaultScrapeURL
	}
	return &ScrapeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultScrapeTimeout},
	}
}

// ScrapeResult holds the usable parts of a successful scrape.
type ScrapeResult struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	Markdown      string
}

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    *struct {
		Metadata struct {
			Title         string `json:"title"`
			Description   string `json:"description"`
			OGTitle       string `json:"ogTitle"`
			OGDescription string `json:"ogDescription"`
		} `json:"metadata"`
		Markdown string `json:"markdown"`
	} `json:"data,omitempty"`
}

// Scrape fetches a URL through the scrape service. Any failure - transport,
// timeout, non-2xx status, or a response without usable content - is returned
// as an error so the caller can fall back to a direct fetch.
func (c *ScrapeClient) Scrape(ctx context.Context, url string) (*ScrapeResult, error) {
	payload, err := json.Marshal(scrapeRequest{
		URL:             url,
		Formats:         []string{"markdown"},
		OnlyMainContent: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scrape request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scrape service returned HTTP %d", resp.StatusCode)
	}

	var decoded scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode scrape response: %w", err)
	}

	if !decoded.Success || decoded.Data == nil {
		if decoded.Error != "" {
			return nil, fmt.Errorf("scrape service error: %s", decoded.Error)
		}
		return nil, fmt.Errorf("scrape service returned no content")
	}

	result := &ScrapeResult{
		Title:         decoded.Data.Metadata.Title,
		Description:   decoded.Data.Metadata.Description,
		OGTitle:       decoded.Data.Metadata.OGTitle,
		OGDescription: decoded.Data.Metadata.OGDescription,
		Markdown:      decoded.Data.Markdown,
	}
	if result.Title == "" && result.Description == "" && result.Markdown == "" {
		return nil, fmt.Errorf("scrape service returned no content")
	}

	return result, nil
}
