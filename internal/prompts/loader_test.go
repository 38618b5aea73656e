package prompts

import (
	"strings"
	"testing"
)

func TestGet_ExistingPrompts(t *testing.T) {
	tests := []struct {
		filename string
		key      string
		contains string
	}{
		{"research.json", "brand_task", "suggested_topics"},
		{"research.json", "product_expected_output", "main_difference"},
		{"promptgen.json", "system", "BRAND-AGNOSTIC"},
		{"promptgen.json", "user", "{{.NumTopics}}"},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"/"+tt.key, func(t *testing.T) {
			prompt, err := Get(tt.filename, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !strings.Contains(prompt, tt.contains) {
				t.Errorf("Get(%s, %s) missing %q", tt.filename, tt.key, tt.contains)
			}
		})
	}
}

func TestGet_MissingKey(t *testing.T) {
	if _, err := Get("research.json", "no_such_key"); err == nil {
		t.Error("Get() expected error for missing key")
	}
}

func TestGet_MissingFile(t *testing.T) {
	if _, err := Get("missing.json", "key"); err == nil {
		t.Error("Get() expected error for missing file")
	}
}

func TestKeys(t *testing.T) {
	keys, err := Keys("promptgen.json")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("Keys() not sorted: %v", keys)
		}
	}
	found := false
	for _, k := range keys {
		if k == "system" {
			found = true
		}
	}
	if !found {
		t.Error("Keys() missing \"system\"")
	}
}

func TestFormat(t *testing.T) {
	template := "Research {{.ProductName}} in {{.Industry}}"
	result := Format(template, map[string]string{
		"ProductName": "Hydrating Cleanser",
		"Industry":    "skincare",
	})
	expected := "Research Hydrating Cleanser in skincare"
	if result != expected {
		t.Errorf("Format() = %q, want %q", result, expected)
	}
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	if result != "Hello {{.Name}}" {
		t.Errorf("Format() = %q, want placeholder left intact", result)
	}
}
