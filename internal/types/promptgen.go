package types

// GeneratedPrompt is a single brand-agnostic consumer question used for
// tracking which brands AI assistants recommend organically.
type GeneratedPrompt struct {
	PromptText       string   `json:"prompt_text"`
	Intent           string   `json:"intent"`
	ExpectedMentions []string `json:"expected_mentions"`
}

// GeneratedTopic groups generated prompts under one product category or use case.
type GeneratedTopic struct {
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Prompts     []GeneratedPrompt `json:"prompts"`
}

// PromptGenerationResult is the complete output of a prompt generation run.
type PromptGenerationResult struct {
	BrandName    string           `json:"brand_name"`
	Industry     string           `json:"industry"`
	Topics       []GeneratedTopic `json:"topics"`
	TotalPrompts int              `json:"total_prompts"`
}

// DefaultPromptIntent is used when the LLM omits the intent of a prompt.
const DefaultPromptIntent = "visibility"
