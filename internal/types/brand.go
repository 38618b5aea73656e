// Package types provides type definitions for structured data used throughout the brand-research system.
package types

// BrandInfo holds structured brand information extracted from a website and search results.
// Optional fields stay nil when the research step could not verify them.
type BrandInfo struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Tagline             *string  `json:"tagline,omitempty"`
	Industry            *string  `json:"industry,omitempty"`
	TargetAudience      *string  `json:"target_audience,omitempty"`
	KeyProducts         []string `json:"key_products,omitempty"`
	BrandValues         []string `json:"brand_values,omitempty"`
	UniqueSellingPoints []string `json:"unique_selling_points,omitempty"`
	ToneOfVoice         *string  `json:"tone_of_voice,omitempty"`
	SuggestedTopics     []string `json:"suggested_topics,omitempty"`
}

// NewBrandInfo returns a BrandInfo pre-filled with defaults.
// Decoding an LLM reply on top of it leaves the defaults in place for
// fields that are missing or explicitly null.
func NewBrandInfo() BrandInfo {
	return BrandInfo{Name: "Unknown"}
}
