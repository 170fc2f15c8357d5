package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/observability"
	"github.com/jonathan/careercraft/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend courses for the largest skill gaps",
	Long:  "Builds prioritized course recommendations with ROI estimates for every gapped skill across the profile's target careers, producing a SkillRecommendation JSON list ordered by priority then gap size.",
	RunE:  runRecommend,
}

var (
	recommendProfile string
	recommendOutput  string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input profile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendations JSON file (required)")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(recommendProfile)
	if err != nil {
		return err
	}
	applyConfigTargets(profile, cfg)

	recs := recommend.Recommend(cat, profile.Skills, profile.TargetCareers)

	if err := writeJSON(recommendOutput, recs); err != nil {
		return err
	}

	if rootVerbose {
		observability.NewPrinter(os.Stdout).PrintRecommendations(recs)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully recommended %d skills to %s\n", len(recs), recommendOutput)
	return nil
}
