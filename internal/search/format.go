// Package search - format.go renders raw search payloads as the text blocks
// fed to the research agents. These are tool outputs, so failures come back
// as error text, never as Go errors.
package search

import (
	"context"
	"fmt"
	"strings"
)

// BrandInfoText searches for brand information and formats the knowledge
// graph and top organic results as agent-readable text.
func (c *Client) BrandInfoText(ctx context.Context, query string) string {
	data, err := c.do(ctx, query, 0)
	if err != nil {
		return "Search error: " + err.Error()
	}

	var sb strings.Builder

	if kg := data.KnowledgeGraph; kg != nil {
		sb.WriteString("=== KNOWLEDGE GRAPH ===\n")
		fmt.Fprintf(&sb, "Title: %s\n", orNA(kg.Title))
		fmt.Fprintf(&sb, "Type: %s\n", orNA(kg.Type))
		if kg.Description != "" {
			fmt.Fprintf(&sb, "Description: %s\n", kg.Description)
		}
	}

	if len(data.OrganicResults) > 0 {
		sb.WriteString("\n=== SEARCH RESULTS ===\n")
		for i, r := range data.OrganicResults {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&sb, "\nResult %d:\n", i+1)
			fmt.Fprintf(&sb, "  Title: %s\n", orNA(r.Title))
			fmt.Fprintf(&sb, "  Snippet: %s\n", orNA(r.Snippet))
		}
	}

	if sb.Len() == 0 {
		return "No relevant results found"
	}
	return sb.String()
}

// ProductInfoText searches for product information and formats shopping
// results, organic results, related questions, and the knowledge graph as
// agent-readable text.
func (c *Client) ProductInfoText(ctx context.Context, query string) string {
	data, err := c.do(ctx, query, 0)
	if err != nil {
		return "Search error: " + err.Error()
	}

	var sb strings.Builder

	if len(data.ImmersiveProducts) > 0 {
		sb.WriteString("=== SHOPPING RESULTS ===\n")
		for i, p := range data.ImmersiveProducts {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&sb, "\nProduct %d:\n", i+1)
			fmt.Fprintf(&sb, "  Title: %s\n", orNA(p.Title))
			fmt.Fprintf(&sb, "  Source: %s\n", orNA(p.Source))
			fmt.Fprintf(&sb, "  Price: %s\n", orNA(p.Price))
			if p.Rating > 0 {
				fmt.Fprintf(&sb, "  Rating: %.1f (%d reviews)\n", p.Rating, p.Reviews)
			}
		}
	}

	if len(data.OrganicResults) > 0 {
		sb.WriteString("\n=== ORGANIC SEARCH RESULTS ===\n")
		for i, r := range data.OrganicResults {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&sb, "\nResult %d:\n", i+1)
			fmt.Fprintf(&sb, "  Title: %s\n", orNA(r.Title))
			fmt.Fprintf(&sb, "  Snippet: %s\n", orNA(r.Snippet))
			fmt.Fprintf(&sb, "  Source: %s\n", orNA(r.Source))
			fmt.Fprintf(&sb, "  Link: %s\n", orNA(r.Link))
		}
	}

	if len(data.RelatedQuestions) > 0 {
		sb.WriteString("\n=== RELATED QUESTIONS ===\n")
		for i, q := range data.RelatedQuestions {
			if i >= 3 {
				break
			}
			fmt.Fprintf(&sb, "\nQ: %s\n", orNA(q.Question))
			answer := q.Snippet
			for _, block := range q.TextBlocks {
				if block.Type == "paragraph" && block.Snippet != "" {
					answer = block.Snippet
					break
				}
			}
			if answer != "" {
				fmt.Fprintf(&sb, "A: %s\n", truncate(answer, 500))
			}
		}
	}

	if kg := data.KnowledgeGraph; kg != nil {
		sb.WriteString("\n=== KNOWLEDGE GRAPH ===\n")
		fmt.Fprintf(&sb, "Title: %s\n", orNA(kg.Title))
		fmt.Fprintf(&sb, "Type: %s\n", orNA(kg.Type))
		if kg.Description != "" {
			fmt.Fprintf(&sb, "Description: %s\n", kg.Description)
		}
	}

	if sb.Len() == 0 {
		return "No relevant results found"
	}
	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
