// Package fetch - content.go assembles the markdown-like content block that
// research agents consume. Failures never propagate: the worst case is a
// textual error message returned as the content.
package fetch

import (
	"context"
	"log"
	"strings"
)

// Fetcher retrieves website content, preferring the scrape service and
// falling back to a direct HTTP fetch.
type Fetcher struct {
	scrape *ScrapeClient
	opts   *Options

	// UseBrowser enables headless rendering when the direct fetch yields a
	// near-empty page, which usually means a JavaScript-rendered SPA.
	UseBrowser bool
	Verbose    bool
}

// NewFetcher creates a Fetcher backed by the scrape service at scrapeBaseURL.
// An empty scrapeBaseURL uses the default local service address.
func NewFetcher(scrapeBaseURL string) *Fetcher {
	return &Fetcher{
		scrape: NewScrapeClient(scrapeBaseURL),
		opts:   DefaultOptions(),
	}
}

// WebsiteContent fetches and extracts text content for a URL.
// The URL is normalized first (https:// is assumed when no scheme is given).
// It never returns an error: scrape failures fall back to a direct fetch, and
// a failed fallback produces an error message as the content.
func (f *Fetcher) WebsiteContent(ctx context.Context, rawURL string) string {
	url := NormalizeURL(rawURL)

	result, err := f.scrape.Scrape(ctx, url)
	if err == nil {
		return buildContent(result.Title, result.Description, result.OGTitle, result.OGDescription, result.Markdown)
	}

	if f.Verbose {
		log.Printf("[fetch] scrape service failed (%v), falling back to direct fetch", err)
	}
	return f.fallbackFetch(ctx, url)
}

// fallbackFetch retrieves the page directly and extracts content with the
// handwritten HTML extractor.
func (f *Fetcher) fallbackFetch(ctx context.Context, url string) string {
	result, err := URL(ctx, url, f.opts)
	if err != nil {
		return "Fallback HTTP error: " + err.Error()
	}

	meta, err := ExtractPage(result.HTML)
	if err != nil {
		return "Fallback HTTP error: " + err.Error()
	}

	// SPA pages often render nothing without JavaScript; retry in a headless
	// browser when enabled.
	if f.UseBrowser && ShouldUseBrowser(meta.Text) {
		if html, berr := WithBrowser(ctx, url, DefaultTimeout, f.Verbose); berr == nil {
			if rendered, eerr := ExtractPage(html); eerr == nil {
				meta = rendered
			}
		} else if f.Verbose {
			log.Printf("[fetch] browser rendering failed: %v", berr)
		}
	}

	return buildContent(meta.Title, meta.Description, meta.OGTitle, meta.OGDescription, meta.Text)
}

// buildContent assembles the content block handed to the LLM. Open Graph
// fields are included only when they add information beyond the primary
// title/description.
func buildContent(title, description, ogTitle, ogDescription, body string) string {
	var parts []string

	if title != "" {
		parts = append(parts, "# "+title)
	}
	if description != "" {
		parts = append(parts, "\n**Description:** "+description)
	}
	if ogTitle != "" && ogTitle != title {
		parts = append(parts, "**OG Title:** "+ogTitle)
	}
	if ogDescription != "" && ogDescription != description {
		parts = append(parts, "**OG Description:** "+ogDescription)
	}
	if body != "" {
		parts = append(parts, "\n## Website Content\n\n"+body)
	}

	if len(parts) == 0 {
		return "Could not extract content from website"
	}
	return strings.Join(parts, "\n")
}
