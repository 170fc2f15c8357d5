// Package main provides the entry point for the CareerCraft CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careercraft",
	Short: "CareerCraft career assessment engine",
	Long:  "CareerCraft scores self-assessed skill profiles against a career catalog: weighted career matching, skill gap analysis, course recommendations with ROI estimates, readiness bands, and a rule-based consultation, via CLI or REST API.",
}

var (
	rootConfig  string
	rootCatalog string
	rootVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfig, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootCatalog, "catalog", "", "Path to a catalog JSON file (default: built-in catalog)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print formatted result summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
