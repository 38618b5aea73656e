package main

import (
	"context"
	"os"

	"github.com/jonathan/brand-research/internal/observability"
	"github.com/jonathan/brand-research/internal/types"
	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Generate AI-visibility prompts for a brand",
	Long:  "Generates topic-grouped prompts that consumers might ask an AI assistant, for measuring brand visibility in AI answers.",
	RunE:  runPrompts,
}

var (
	promptsConfigPath  string
	promptsBrandName   string
	promptsDescription string
	promptsTopics      []string
	promptsCompetitors []string
	promptsNumTopics   int
	promptsPerTopic    int
	promptsUseAgent    bool
	promptsVerbose     bool
)

func init() {
	promptsCmd.Flags().StringVar(&promptsConfigPath, "config", "", "Path to config.json file")
	promptsCmd.Flags().StringVarP(&promptsBrandName, "name", "n", "", "Brand name (required)")
	promptsCmd.Flags().StringVarP(&promptsDescription, "description", "d", "", "Brand description for prompt context")
	promptsCmd.Flags().StringSliceVarP(&promptsTopics, "topic", "t", nil, "Topic to generate prompts for (repeatable)")
	promptsCmd.Flags().StringSliceVar(&promptsCompetitors, "competitor", nil, "Competitor name for comparison prompts (repeatable)")
	promptsCmd.Flags().IntVar(&promptsNumTopics, "num-topics", 0, "Number of topics to generate (default: 5)")
	promptsCmd.Flags().IntVar(&promptsPerTopic, "prompts-per-topic", 0, "Prompts per topic (default: 5)")
	promptsCmd.Flags().BoolVar(&promptsUseAgent, "use-agent", false, "Use the agent path instead of a direct completion")
	promptsCmd.Flags().BoolVarP(&promptsVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	cobra.CheckErr(promptsCmd.MarkFlagRequired("name"))

	rootCmd.AddCommand(promptsCmd)
}

func runPrompts(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(promptsConfigPath)
	if err != nil {
		return err
	}
	if promptsVerbose {
		cfg.Verbose = true
	}

	ctx := context.Background()
	svc, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result := svc.GeneratePrompts(ctx, types.PromptGenerateRequest{
		BrandName:        promptsBrandName,
		BrandDescription: promptsDescription,
		Topics:           promptsTopics,
		Competitors:      promptsCompetitors,
		NumTopics:        promptsNumTopics,
		PromptsPerTopic:  promptsPerTopic,
		UseAgent:         promptsUseAgent,
	})

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintPromptResult(&result)
	}
	return printJSON(result)
}
