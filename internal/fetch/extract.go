// Package fetch - extract.go parses raw HTML into page metadata and body text.
package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxContentLength is the cap on extracted body text; longer pages are
// truncated with an ellipsis marker before being handed to the LLM.
const MaxContentLength = 15000

// PageMeta holds the metadata and main text extracted from an HTML page.
type PageMeta struct {
	Title         string
	Description   string
	OGTitle       string
	OGDescription string
	Text          string
}

// ExtractPage parses HTML and pulls out the title, meta description,
// Open Graph tags, and the page text with script/style/nav/footer/header
// blocks removed and whitespace collapsed.
func ExtractPage(html string) (*PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	meta := &PageMeta{
		Title:         strings.TrimSpace(doc.Find("title").First().Text()),
		Description:   metaContent(doc, `meta[name="description"]`),
		OGTitle:       metaContent(doc, `meta[property="og:title"]`),
		OGDescription: metaContent(doc, `meta[property="og:description"]`),
	}

	// Strip navigation chrome and non-content elements before text extraction
	doc.Find("script, style, nav, footer, header").Remove()

	text := collapseWhitespace(doc.Find("body").Text())
	if text == "" {
		// Fragment without a body element; fall back to the whole document
		text = collapseWhitespace(doc.Text())
	}
	if len(text) > MaxContentLength {
		text = text[:MaxContentLength] + "..."
	}
	meta.Text = text

	return meta, nil
}

// metaContent returns the trimmed content attribute of the first matching
// meta tag. Attribute order within the tag does not matter to the parser.
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// collapseWhitespace reduces all whitespace runs to single spaces.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
