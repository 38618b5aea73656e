// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/brand-research/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// PrintBrandInfo outputs a human-readable summary of a brand research result.
func (p *Printer) PrintBrandInfo(info *types.BrandInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Brand:    %s\n", info.Name))
	if info.Industry != nil {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", *info.Industry))
	}
	if info.Tagline != nil {
		sb.WriteString(fmt.Sprintf("Tagline:  %s\n", clip(*info.Tagline, 45)))
	}
	if info.Description != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", clip(info.Description, 200)))
	}

	if len(info.KeyProducts) > 0 {
		sb.WriteString("\nKey Products:\n")
		count := min(len(info.KeyProducts), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", clip(info.KeyProducts[i], 50)))
		}
		if len(info.KeyProducts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(info.KeyProducts)-maxItemsToShow))
		}
	}

	if len(info.SuggestedTopics) > 0 {
		sb.WriteString("\nSuggested Topics:\n")
		count := min(len(info.SuggestedTopics), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", info.SuggestedTopics[i]))
		}
		if len(info.SuggestedTopics) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(info.SuggestedTopics)-maxItemsToShow))
		}
	}

	p.printBox("BRAND PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProductInfo outputs a human-readable summary of a product research result.
func (p *Printer) PrintProductInfo(info *types.ProductInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Product:  %s\n", info.Name))
	if info.Brand != nil {
		sb.WriteString(fmt.Sprintf("Brand:    %s\n", *info.Brand))
	}
	if info.Price != nil {
		sb.WriteString(fmt.Sprintf("Price:    %s\n", *info.Price))
	}
	if info.ProductType != nil {
		sb.WriteString(fmt.Sprintf("Type:     %s\n", *info.ProductType))
	}
	if info.Description != nil {
		sb.WriteString(fmt.Sprintf("\n%s\n", clip(*info.Description, 200)))
	}

	if len(info.Ingredients) > 0 {
		sb.WriteString("\nKey Ingredients:\n")
		count := min(len(info.Ingredients), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", info.Ingredients[i]))
		}
		if len(info.Ingredients) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(info.Ingredients)-maxItemsToShow))
		}
	}

	p.printBox("PRODUCT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompetitorAnalysis outputs the discovered competitors with their
// similarity reasons.
func (p *Printer) PrintCompetitorAnalysis(analysis *types.CompetitorAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Brand:    %s\n", analysis.BrandName))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", analysis.Industry))
	if analysis.MarketPosition != nil {
		sb.WriteString(fmt.Sprintf("Market:   %s\n", clip(*analysis.MarketPosition, 45)))
	}

	if len(analysis.Competitors) > 0 {
		sb.WriteString(fmt.Sprintf("\nFound %d competitors:\n\n", len(analysis.Competitors)))
		count := min(len(analysis.Competitors), maxItemsToShow)
		for i := 0; i < count; i++ {
			c := analysis.Competitors[i]
			sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, c.Name))
			if c.Website != nil {
				sb.WriteString(fmt.Sprintf("    %s\n", clip(*c.Website, 50)))
			}
			sb.WriteString(fmt.Sprintf("    Why: %s\n", clip(c.SimilarityReason, 45)))
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
		if len(analysis.Competitors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more competitors", len(analysis.Competitors)-maxItemsToShow))
		}
	}

	p.printBox("COMPETITOR ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPromptResult outputs generated topics and a sample of their prompts.
func (p *Printer) PrintPromptResult(result *types.PromptGenerationResult) {
	if result == nil || len(result.Topics) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d prompts across %d topics:\n\n",
		result.TotalPrompts, len(result.Topics)))

	count := min(len(result.Topics), maxItemsToShow)
	for i := 0; i < count; i++ {
		topic := result.Topics[i]
		sb.WriteString(fmt.Sprintf("• %s (%d prompts)\n", clip(topic.Name, 40), len(topic.Prompts)))
		if len(topic.Prompts) > 0 {
			sb.WriteString(fmt.Sprintf("  e.g. %s\n", clip(topic.Prompts[0].PromptText, 45)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Topics) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more topics", len(result.Topics)-maxItemsToShow))
	}

	p.printBox("GENERATED PROMPTS", sb.String())
}
