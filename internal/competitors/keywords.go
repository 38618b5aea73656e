package competitors

import (
	"regexp"
	"strings"
)

// Keyword patterns recognized in brand descriptions. Matches feed the query
// synthesizer, so the more specific a pattern, the better the queries.
var (
	medicalPattern    = regexp.MustCompile(`(?i)\b(USMLE|MCAT|NCLEX|Step [123]|COMLEX|NBME|board exam|medical school|QBank|question bank)\b`)
	techPattern       = regexp.MustCompile(`(?i)\b(AI[- ]powered|machine learning|SaaS|B2B|B2C|API|platform|app|software)\b`)
	ecomPattern       = regexp.MustCompile(`(?i)\b(e-commerce|marketplace|DTC|direct-to-consumer|subscription|retail)\b`)
	quotedPattern     = regexp.MustCompile(`"([^"]+)"`)
	properNounPattern = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\b`)
)

// acronyms are always reported uppercase regardless of how the description
// spells them.
var acronyms = map[string]struct{}{
	"USMLE": {}, "MCAT": {}, "NCLEX": {}, "COMLEX": {}, "NBME": {},
}

// ExtractKeywords pulls searchable terms out of a brand description: exam
// and test-prep vocabulary, tech and commerce terms, quoted phrases, and
// capitalized multi-word names. Output order follows first appearance per
// pattern group, with duplicates removed, so the same description always
// yields the same keyword list.
func ExtractKeywords(description string) []string {
	var keywords []string

	for _, m := range medicalPattern.FindAllStringSubmatch(description, -1) {
		term := m[1]
		if _, ok := acronyms[strings.ToUpper(term)]; ok {
			term = strings.ToUpper(term)
		}
		keywords = append(keywords, term)
	}
	for _, m := range techPattern.FindAllStringSubmatch(description, -1) {
		keywords = append(keywords, m[1])
	}
	for _, m := range ecomPattern.FindAllStringSubmatch(description, -1) {
		keywords = append(keywords, m[1])
	}
	for _, m := range quotedPattern.FindAllStringSubmatch(description, -1) {
		keywords = append(keywords, m[1])
	}
	for _, m := range properNounPattern.FindAllStringSubmatch(description, -1) {
		keywords = append(keywords, m[1])
	}

	return dedupe(keywords)
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
