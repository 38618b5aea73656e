package research

import (
	"context"
	"fmt"

	"github.com/jonathan/brand-research/internal/agent"
	"github.com/jonathan/brand-research/internal/llm"
	"github.com/jonathan/brand-research/internal/prompts"
	"github.com/jonathan/brand-research/internal/types"
)

// ResearchProduct extracts structured product information from web search
// evidence. Failures degrade to a record with just the product name and the
// error text. Never returns an error.
func (s *Service) ResearchProduct(ctx context.Context, productName string) types.ProductInfo {
	searchTool := agent.FuncTool{
		ToolName: "search_google",
		Fn: func(ctx context.Context, input string) string {
			return s.search.ProductInfoText(ctx, input)
		},
	}

	a := &agent.Agent{
		Role: prompts.MustGet("research.json", "product_role"),
		Goal: prompts.Format(prompts.MustGet("research.json", "product_goal"), map[string]string{
			"ProductName": productName,
		}),
		Backstory: prompts.MustGet("research.json", "product_backstory"),
		Client:    s.llm,
		Tier:      llm.TierStandard,
	}

	raw, err := a.Execute(ctx, agent.Task{
		Description: prompts.Format(prompts.MustGet("research.json", "product_task"), map[string]string{
			"ProductName": productName,
		}),
		ExpectedOutput: prompts.MustGet("research.json", "product_expected_output"),
		Invocations: []agent.Invocation{
			{Tool: searchTool, Input: productName},
			{Tool: searchTool, Input: productName + " ingredients price reviews"},
		},
	})
	if err != nil {
		return productFallback(productName, err)
	}

	info := types.ProductInfo{Name: productName}
	if err := llm.DecodeRecord(raw, &info); err != nil {
		return productFallback(productName, err)
	}
	if info.Name == "" {
		info.Name = productName
	}
	return info
}

func productFallback(productName string, err error) types.ProductInfo {
	desc := fmt.Sprintf("Error parsing result: %v", err)
	return types.ProductInfo{
		Name:        productName,
		Description: &desc,
	}
}
