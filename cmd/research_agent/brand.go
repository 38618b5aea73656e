package main

import (
	"context"
	"os"

	"github.com/jonathan/brand-research/internal/observability"
	"github.com/spf13/cobra"
)

var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Research a brand from its website",
	Long:  "Fetches the brand website, runs a web search, and produces a structured brand profile as JSON.",
	RunE:  runBrand,
}

var (
	brandConfigPath string
	brandWebsiteURL string
	brandName       string
	brandAPIKey     string
	brandVerbose    bool
)

func init() {
	brandCmd.Flags().StringVar(&brandConfigPath, "config", "", "Path to config.json file")
	brandCmd.Flags().StringVarP(&brandWebsiteURL, "url", "u", "", "Brand website URL (required)")
	brandCmd.Flags().StringVarP(&brandName, "name", "n", "", "Brand name hint (optional)")
	brandCmd.Flags().StringVar(&brandAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	brandCmd.Flags().BoolVarP(&brandVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	cobra.CheckErr(brandCmd.MarkFlagRequired("url"))

	rootCmd.AddCommand(brandCmd)
}

func runBrand(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(brandConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.GeminiAPIKey = brandAPIKey
	}
	if brandVerbose {
		cfg.Verbose = true
	}

	ctx := context.Background()
	svc, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	info := svc.ResearchBrand(ctx, brandWebsiteURL, brandName)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintBrandInfo(&info)
	}
	return printJSON(info)
}
