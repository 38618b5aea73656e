// Package competitors identifies competing companies from web search results
// using deterministic keyword extraction, query synthesis, and a two-pass
// candidate scan over search hits.
package competitors

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/brand-research/internal/schemas"
)

//go:embed tables.json tables.schema.json
var tablesFS embed.FS

// KnownCompetitor is a curated entry in the known-competitor lookup table.
type KnownCompetitor struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Category string `json:"category"`
}

// Tables holds the curated lookup data used during competitor extraction:
// a known-competitor table keyed by the lowercase mention text to scan for,
// and the set of domains that are aggregators, review sites, or social
// platforms rather than actual competitors.
type Tables struct {
	KnownCompetitors map[string]KnownCompetitor `json:"known_competitors"`
	ExcludedDomains  []string                   `json:"excluded_domains"`

	// sortedKeys gives the scan a stable iteration order over the map.
	sortedKeys []string
	excluded   map[string]struct{}
}

// DefaultTables loads the embedded lookup tables.
func DefaultTables() (*Tables, error) {
	raw, err := tablesFS.ReadFile("tables.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded tables: %w", err)
	}
	return parseTables(raw)
}

// LoadTables loads lookup tables from a file, letting deployments extend the
// curated data beyond the embedded defaults.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	return parseTables(raw)
}

func parseTables(raw []byte) (*Tables, error) {
	schema, err := tablesFS.ReadFile("tables.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read tables schema: %w", err)
	}
	if err := schemas.ValidateJSONString(string(schema), string(raw)); err != nil {
		return nil, fmt.Errorf("invalid competitor tables: %w", err)
	}

	var t Tables
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to parse competitor tables: %w", err)
	}
	t.index()
	return &t, nil
}

func (t *Tables) index() {
	t.sortedKeys = make([]string, 0, len(t.KnownCompetitors))
	for key := range t.KnownCompetitors {
		t.sortedKeys = append(t.sortedKeys, key)
	}
	sort.Strings(t.sortedKeys)

	t.excluded = make(map[string]struct{}, len(t.ExcludedDomains))
	for _, d := range t.ExcludedDomains {
		t.excluded[strings.ToLower(d)] = struct{}{}
	}
}

// IsExcluded reports whether a domain label belongs to the exclusion set.
func (t *Tables) IsExcluded(label string) bool {
	_, ok := t.excluded[strings.ToLower(label)]
	return ok
}
