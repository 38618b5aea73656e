package main

import (
	"context"
	"os"

	"github.com/jonathan/brand-research/internal/observability"
	"github.com/spf13/cobra"
)

var competitorsCmd = &cobra.Command{
	Use:   "competitors",
	Short: "Find competitors for a brand",
	Long:  "Synthesizes search queries from the brand profile, runs them in parallel, and extracts ranked competitors as JSON.",
	RunE:  runCompetitors,
}

var (
	competitorsConfigPath  string
	competitorsBrandName   string
	competitorsDescription string
	competitorsIndustry    string
	competitorsTopics      []string
	competitorsTablesPath  string
	competitorsVerbose     bool
)

func init() {
	competitorsCmd.Flags().StringVar(&competitorsConfigPath, "config", "", "Path to config.json file")
	competitorsCmd.Flags().StringVarP(&competitorsBrandName, "name", "n", "", "Brand name (required)")
	competitorsCmd.Flags().StringVarP(&competitorsDescription, "description", "d", "", "Brand description, improves keyword extraction")
	competitorsCmd.Flags().StringVar(&competitorsIndustry, "industry", "", "Industry label used in search queries")
	competitorsCmd.Flags().StringSliceVarP(&competitorsTopics, "topic", "t", nil, "Topic to search around (repeatable)")
	competitorsCmd.Flags().StringVar(&competitorsTablesPath, "tables", "", "Path to competitor lookup tables JSON (overrides built-in tables)")
	competitorsCmd.Flags().BoolVarP(&competitorsVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	cobra.CheckErr(competitorsCmd.MarkFlagRequired("name"))

	rootCmd.AddCommand(competitorsCmd)
}

func runCompetitors(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(competitorsConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("tables") {
		cfg.TablesPath = competitorsTablesPath
	}
	if competitorsVerbose {
		cfg.Verbose = true
	}

	ctx := context.Background()
	svc, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	analysis := svc.ResearchCompetitors(ctx, competitorsBrandName, competitorsDescription, competitorsIndustry, competitorsTopics)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintCompetitorAnalysis(&analysis)
	}
	return printJSON(analysis)
}
