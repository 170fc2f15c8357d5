package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the active skill and career catalog",
	Long:  "Loads and validates the active catalog (built-in or --catalog) and prints a summary with its model version tags. With --out, writes the full catalog JSON for editing.",
	RunE:  runCatalog,
}

var catalogOutput string

func init() {
	catalogCmd.Flags().StringVarP(&catalogOutput, "out", "o", "", "Path to output catalog JSON file (optional)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if catalogOutput != "" {
		if err := writeJSON(catalogOutput, cat); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote catalog %s to %s\n", cat.Version, catalogOutput)
		return nil
	}

	versions := cat.Versions()
	_, _ = fmt.Fprintf(os.Stdout, "Catalog version: %s\n", cat.Version)
	_, _ = fmt.Fprintf(os.Stdout, "Skills:          %d\n", len(cat.Skills))
	_, _ = fmt.Fprintf(os.Stdout, "Careers:         %d\n", len(cat.Careers))
	_, _ = fmt.Fprintf(os.Stdout, "Categories:      %d\n", len(cat.Categories()))
	_, _ = fmt.Fprintf(os.Stdout, "Model versions:  weights %s, bands %s, roi %s\n",
		versions.PracticeWeightVersion, versions.ReadinessBandVersion, versions.ROICoefficientVersion)
	return nil
}
