package types

// CompetitorInfo describes a single discovered competitor.
type CompetitorInfo struct {
	Name             string   `json:"name"`
	Website          *string  `json:"website,omitempty"`
	Description      string   `json:"description"`
	SimilarityReason string   `json:"similarity_reason"`
	Strengths        []string `json:"strengths,omitempty"`
	TargetAudience   *string  `json:"target_audience,omitempty"`
}

// CompetitorAnalysis is the complete result of a competitor discovery run.
type CompetitorAnalysis struct {
	BrandName            string           `json:"brand_name"`
	Industry             string           `json:"industry"`
	Competitors          []CompetitorInfo `json:"competitors"`
	MarketPosition       *string          `json:"market_position,omitempty"`
	CompetitiveLandscape *string          `json:"competitive_landscape,omitempty"`
}
