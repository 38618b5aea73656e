package competitors

import (
	"fmt"
	"strings"
)

// maxQueries caps a synthesized query batch.
const maxQueries = 8

// SynthesizeQueries builds targeted competitor-search queries from the brand
// context. Keyword queries come first since they surface the most direct
// competitors, followed by topic, industry, and "alternatives to" queries.
// Queries are deduplicated case-insensitively in order and capped at
// maxQueries.
func SynthesizeQueries(brandName, brandDescription, industry string, topics []string) []string {
	var queries []string

	keywords := ExtractKeywords(brandDescription)
	for i, kw := range keywords {
		if i >= 3 {
			break
		}
		queries = append(queries, fmt.Sprintf("best %s apps 2024", kw))
		queries = append(queries, fmt.Sprintf("%s alternatives", kw))
	}

	for i, topic := range topics {
		if i >= 3 {
			break
		}
		queries = append(queries, fmt.Sprintf("top %s companies", topic))
		queries = append(queries, fmt.Sprintf("best %s platforms 2024", topic))
	}

	queries = append(queries, fmt.Sprintf("%s market leaders 2024", industry))
	queries = append(queries, fmt.Sprintf("top %s startups", industry))

	// "alternatives to" searches often surface curated competitor lists, but
	// only work when the brand name is distinctive enough.
	if len(brandName) > 3 {
		queries = append(queries, fmt.Sprintf("%s alternatives", brandName))
		queries = append(queries, fmt.Sprintf("apps like %s", brandName))
	}

	seen := make(map[string]struct{}, len(queries))
	unique := make([]string, 0, len(queries))
	for _, q := range queries {
		key := strings.ToLower(q)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, q)
	}

	if len(unique) > maxQueries {
		unique = unique[:maxQueries]
	}
	return unique
}
