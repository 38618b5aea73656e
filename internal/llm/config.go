// Package llm provides the model configuration and client abstraction used
// by the research flows.
package llm

// ModelTier selects how much model capability a call gets. Research work is
// tiered by how much evidence the completion has to reason over.
type ModelTier string

const (
	// TierLite serves fast, direct tasks: the no-agent prompt generation path
	TierLite ModelTier = "lite"
	// TierStandard serves moderate reasoning: brand and product research synthesis
	TierStandard ModelTier = "standard"
	// TierAdvanced serves complex reasoning over large evidence bundles
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only one wired.
const ProviderGemini Provider = "gemini"

// Config maps model tiers to provider model names
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard and
// then lite when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the Config with one tier's model replaced
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Provider: c.Provider, Models: models}
}
