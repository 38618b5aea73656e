package competitors

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/brand-research/internal/search"
	"github.com/jonathan/brand-research/internal/types"
)

// maxCompetitors limits how many extracted companies are reported.
const maxCompetitors = 10

// maxDescriptionLength bounds a competitor description built from a snippet.
const maxDescriptionLength = 150

var domainPattern = regexp.MustCompile(`https?://(?:www\.)?([^/]+)`)

// Extractor turns raw search responses into a ranked competitor list using
// the curated lookup tables.
type Extractor struct {
	Tables *Tables
}

// NewExtractor creates an extractor over the given tables.
func NewExtractor(tables *Tables) *Extractor {
	return &Extractor{Tables: tables}
}

type candidate struct {
	name             string
	website          string
	similarityReason string
	snippet          string
	mentions         int
}

// Extract scans search responses for competitor companies in two passes.
// The first pass matches entries from the known-competitor table against
// result titles and snippets. The second pass treats result domains as
// candidate companies, keeping only those whose title or snippet mentions
// one of the given topics and whose domain is not in the exclusion set.
// Candidates are ranked by mention count and capped at maxCompetitors.
// The brand itself never appears in the output.
func (e *Extractor) Extract(brandName string, topics []string, responses []search.Response) []types.CompetitorInfo {
	brandLower := strings.ToLower(brandName)

	found := make(map[string]*candidate)
	var order []*candidate

	add := func(c *candidate) {
		found[c.name] = c
		order = append(order, c)
	}

	// Pass 1: known competitors mentioned in titles or snippets.
	for _, resp := range responses {
		for _, result := range resp.Results {
			combined := strings.ToLower(result.Title) + " " + strings.ToLower(result.Snippet)

			for _, key := range e.Tables.sortedKeys {
				if !strings.Contains(combined, key) || key == brandLower {
					continue
				}
				info := e.Tables.KnownCompetitors[key]
				if c, ok := found[info.Name]; ok {
					c.mentions++
					continue
				}
				website := info.Website
				if website == "" {
					website = result.Link
				}
				add(&candidate{
					name:             info.Name,
					website:          website,
					similarityReason: info.Category,
					snippet:          result.Snippet,
					mentions:         1,
				})
			}
		}
	}

	// Pass 2: result domains as candidate companies.
	for _, resp := range responses {
		for _, result := range resp.Results {
			m := domainPattern.FindStringSubmatch(result.Link)
			if m == nil {
				continue
			}
			domain := m[1]
			label := strings.Split(domain, ".")[0]

			if e.Tables.IsExcluded(label) {
				continue
			}
			if len(label) <= 2 || strings.ToLower(label) == brandLower {
				continue
			}

			name := titleCase(label)
			if c, ok := found[name]; ok {
				c.mentions++
				continue
			}

			// Only keep domains that actually relate to a topic.
			var relevance []string
			for _, topic := range topics {
				topicLower := strings.ToLower(topic)
				if strings.Contains(strings.ToLower(result.Title), topicLower) ||
					strings.Contains(strings.ToLower(result.Snippet), topicLower) {
					relevance = append(relevance, topic)
				}
			}
			if len(relevance) == 0 {
				continue
			}
			if len(relevance) > 2 {
				relevance = relevance[:2]
			}

			add(&candidate{
				name:             name,
				website:          "https://" + domain,
				similarityReason: strings.Join(relevance, ", "),
				snippet:          result.Snippet,
				mentions:         1,
			})
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].mentions > order[j].mentions
	})
	if len(order) > maxCompetitors {
		order = order[:maxCompetitors]
	}

	competitors := make([]types.CompetitorInfo, 0, len(order))
	for _, c := range order {
		description := c.snippet
		if len(description) > maxDescriptionLength {
			description = description[:maxDescriptionLength-3] + "..."
		}

		reason := c.similarityReason
		if reason == "" {
			reason = "Same industry"
		}

		info := types.CompetitorInfo{
			Name:             c.name,
			Description:      description,
			SimilarityReason: reason,
		}
		if c.website != "" {
			website := c.website
			info.Website = &website
		}
		competitors = append(competitors, info)
	}
	return competitors
}

// titleCase capitalizes the first letter of each hyphen- or space-separated
// word in a domain label.
func titleCase(s string) string {
	var sb strings.Builder
	startOfWord := true
	for _, r := range s {
		switch {
		case r == '-' || r == ' ':
			startOfWord = true
			sb.WriteRune(r)
		case startOfWord:
			sb.WriteString(strings.ToUpper(string(r)))
			startOfWord = false
		default:
			sb.WriteString(strings.ToLower(string(r)))
		}
	}
	return sb.String()
}
