package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/matching"
	"github.com/jonathan/careercraft/internal/observability"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Rank careers against a skill profile",
	Long:  "Ranks catalog careers in the profile's target categories by practice-weighted match percentage, producing a CareerMatch JSON list sorted best match first.",
	RunE:  runMatches,
}

var (
	matchesProfile string
	matchesOutput  string
	matchesSort    string
)

func init() {
	matchesCmd.Flags().StringVarP(&matchesProfile, "profile", "p", "", "Path to input profile JSON file (required)")
	matchesCmd.Flags().StringVarP(&matchesOutput, "out", "o", "", "Path to output matches JSON file (required)")
	matchesCmd.Flags().StringVarP(&matchesSort, "sort", "s", "", "Sort order: match, salary, growth, time_to_entry (default from config)")

	if err := matchesCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := matchesCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchesCmd)
}

func runMatches(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(matchesProfile)
	if err != nil {
		return err
	}
	applyConfigTargets(profile, cfg)

	categories := profile.TargetCategories
	if len(categories) == 0 {
		categories = cat.Categories()
	}

	matches := matching.Rank(cat, profile.Skills, profile.Practice, categories)

	sortKey := matchesSort
	if sortKey == "" {
		sortKey = cfg.SortBy
	}
	matching.Resort(matches, matching.SortKey(sortKey))

	if err := writeJSON(matchesOutput, matches); err != nil {
		return err
	}

	if rootVerbose {
		observability.NewPrinter(os.Stdout).PrintCareerMatches(matches)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully matched %d careers to %s\n", len(matches), matchesOutput)
	return nil
}
