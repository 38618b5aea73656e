package main

import (
	"context"
	"os"

	"github.com/jonathan/brand-research/internal/observability"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Research a product by name",
	Long:  "Searches the web for a product and produces a structured product profile as JSON.",
	RunE:  runProduct,
}

var (
	productConfigPath string
	productName       string
	productAPIKey     string
	productVerbose    bool
)

func init() {
	productCmd.Flags().StringVar(&productConfigPath, "config", "", "Path to config.json file")
	productCmd.Flags().StringVarP(&productName, "name", "n", "", "Product name (required)")
	productCmd.Flags().StringVar(&productAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	productCmd.Flags().BoolVarP(&productVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	cobra.CheckErr(productCmd.MarkFlagRequired("name"))

	rootCmd.AddCommand(productCmd)
}

func runProduct(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(productConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.GeminiAPIKey = productAPIKey
	}
	if productVerbose {
		cfg.Verbose = true
	}

	ctx := context.Background()
	svc, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	info := svc.ResearchProduct(ctx, productName)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintProductInfo(&info)
	}
	return printJSON(info)
}
