package research

import (
	"context"
	"fmt"

	"github.com/jonathan/brand-research/internal/agent"
	"github.com/jonathan/brand-research/internal/llm"
	"github.com/jonathan/brand-research/internal/prompts"
	"github.com/jonathan/brand-research/internal/types"
)

// ResearchBrand profiles a brand from its website. The website content and a
// brand info search are gathered as evidence, the model extracts a
// structured profile, and any parse failure degrades to a minimal record
// carrying the error text in the description. Never returns an error.
func (s *Service) ResearchBrand(ctx context.Context, websiteURL, brandName string) types.BrandInfo {
	brandContext := ""
	if brandName != "" {
		brandContext = fmt.Sprintf("for brand '%s' ", brandName)
	}

	fetchTool := agent.FuncTool{
		ToolName: "fetch_website_content",
		Fn: func(ctx context.Context, input string) string {
			return s.fetcher.WebsiteContent(ctx, input)
		},
	}
	searchTool := agent.FuncTool{
		ToolName: "search_brand_info",
		Fn: func(ctx context.Context, input string) string {
			return s.search.BrandInfoText(ctx, input)
		},
	}

	searchSubject := brandName
	if searchSubject == "" {
		searchSubject = websiteURL
	}

	a := &agent.Agent{
		Role: prompts.MustGet("research.json", "brand_role"),
		Goal: prompts.Format(prompts.MustGet("research.json", "brand_goal"), map[string]string{
			"BrandContext": brandContext,
			"WebsiteURL":   websiteURL,
		}),
		Backstory: prompts.MustGet("research.json", "brand_backstory"),
		Client:    s.llm,
		Tier:      llm.TierStandard,
	}

	raw, err := a.Execute(ctx, agent.Task{
		Description: prompts.Format(prompts.MustGet("research.json", "brand_task"), map[string]string{
			"WebsiteURL": websiteURL,
		}),
		ExpectedOutput: prompts.MustGet("research.json", "brand_expected_output"),
		Invocations: []agent.Invocation{
			{Tool: fetchTool, Input: websiteURL},
			{Tool: searchTool, Input: searchSubject + " company information"},
		},
	})
	if err != nil {
		return brandFallback(brandName, err)
	}

	// Decode on top of defaults so null fields keep them.
	info := types.NewBrandInfo()
	if err := llm.DecodeRecord(raw, &info); err != nil {
		return brandFallback(brandName, err)
	}

	info.Description = llm.NormalizeDescription(info.Description)
	return info
}

func brandFallback(brandName string, err error) types.BrandInfo {
	name := brandName
	if name == "" {
		name = "Unknown"
	}
	return types.BrandInfo{
		Name:        name,
		Description: fmt.Sprintf("Error parsing result: %v", err),
	}
}
