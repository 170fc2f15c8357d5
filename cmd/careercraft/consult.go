package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/consult"
	"github.com/jonathan/careercraft/internal/recommend"
)

var consultCmd = &cobra.Command{
	Use:   "consult",
	Short: "Answer a career question from the consultation rules",
	Long:  "Answers a consultation message from the keyword rule table (ROI, courses, gaps, salary, or the default orientation), using the profile's gaps and targets. The reply is deterministic for identical inputs.",
	RunE:  runConsult,
}

var (
	consultProfile string
	consultMessage string
	consultOutput  string
)

func init() {
	consultCmd.Flags().StringVarP(&consultProfile, "profile", "p", "", "Path to input profile JSON file (required)")
	consultCmd.Flags().StringVarP(&consultMessage, "message", "m", "", "Consultation message (required)")
	consultCmd.Flags().StringVarP(&consultOutput, "out", "o", "", "Path to output file (default: stdout)")

	if err := consultCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := consultCmd.MarkFlagRequired("message"); err != nil {
		panic(fmt.Sprintf("failed to mark message flag as required: %v", err))
	}

	rootCmd.AddCommand(consultCmd)
}

func runConsult(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(consultProfile)
	if err != nil {
		return err
	}
	applyConfigTargets(profile, cfg)

	response := consult.Respond(consultMessage, consult.Context{
		Catalog:       cat,
		CurrentRole:   profile.CurrentRole,
		TargetCareers: profile.TargetCareers,
		Gaps:          recommend.MergeGaps(cat, profile.Skills, profile.TargetCareers),
	})

	if consultOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, response)
		return nil
	}

	if err := os.WriteFile(consultOutput, []byte(response+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", consultOutput, err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote consultation to %s\n", consultOutput)
	return nil
}
