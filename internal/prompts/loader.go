// Package prompts provides access to the LLM prompt templates used by the
// research flows. Templates live in JSON files embedded at compile time,
// keyed by prompt name within each file.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var files embed.FS

// packs caches parsed prompt files by filename.
var packs sync.Map // string -> map[string]string

// Get retrieves a prompt template by filename (without path) and key.
func Get(filename, key string) (string, error) {
	pack, err := load(filename)
	if err != nil {
		return "", err
	}

	template, ok := pack[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for embedded prompts that are known to exist; a missing
// prompt is a build defect, so it panics.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders in a template with values from
// data. Unmatched placeholders are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}

// Keys returns the sorted prompt keys available in a file.
func Keys(filename string) ([]string, error) {
	pack, err := load(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(pack))
	for key := range pack {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func load(filename string) (map[string]string, error) {
	if cached, ok := packs.Load(filename); ok {
		return cached.(map[string]string), nil
	}

	data, err := files.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var pack map[string]string
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	packs.Store(filename, pack)
	return pack, nil
}
