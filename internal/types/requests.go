package types

import (
	"github.com/go-playground/validator/v10"
)

// ProductResearchRequest is the request body for POST /research and /research/simple.
type ProductResearchRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required,min=1"`
	UserID      string `json:"user_id" validate:"required"`
	CallbackURL string `json:"callback_url,omitempty" validate:"omitempty,url"`
}

// BrandResearchRequest is the request body for POST /brand/research and /brand/research/simple.
type BrandResearchRequest struct {
	BrandID     string `json:"brand_id" validate:"required"`
	WebsiteURL  string `json:"website_url" validate:"required,min=1"`
	BrandName   string `json:"brand_name,omitempty"`
	UserID      string `json:"user_id" validate:"required"`
	CallbackURL string `json:"callback_url,omitempty" validate:"omitempty,url"`
}

// CompetitorResearchRequest is the request body for POST /competitors/research
// and /competitors/research/simple.
type CompetitorResearchRequest struct {
	BrandID          string   `json:"brand_id" validate:"required"`
	BrandName        string   `json:"brand_name" validate:"required,min=1"`
	BrandDescription string   `json:"brand_description,omitempty"`
	Industry         string   `json:"industry,omitempty"`
	Topics           []string `json:"topics,omitempty"`
	UserID           string   `json:"user_id" validate:"required"`
	CallbackURL      string   `json:"callback_url,omitempty" validate:"omitempty,url"`
}

// PromptGenerateRequest is the request body for POST /prompts/generate and
// /prompts/generate/simple. UseAgent selects the agent path over the direct
// chat-completion path.
type PromptGenerateRequest struct {
	BrandID          string   `json:"brand_id" validate:"required"`
	BrandName        string   `json:"brand_name" validate:"required,min=1"`
	BrandDescription string   `json:"brand_description,omitempty"`
	Topics           []string `json:"topics,omitempty"`
	Competitors      []string `json:"competitors,omitempty"`
	NumTopics        int      `json:"num_topics,omitempty" validate:"omitempty,min=1,max=20"`
	PromptsPerTopic  int      `json:"prompts_per_topic,omitempty" validate:"omitempty,min=1,max=20"`
	UseAgent         bool     `json:"use_agent,omitempty"`
	UserID           string   `json:"user_id" validate:"required"`
	CallbackURL      string   `json:"callback_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the ProductResearchRequest using the validator.
func (r *ProductResearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BrandResearchRequest using the validator.
func (r *BrandResearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompetitorResearchRequest using the validator.
func (r *CompetitorResearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PromptGenerateRequest using the validator.
func (r *PromptGenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
