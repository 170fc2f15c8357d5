package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/observability"
	"github.com/jonathan/careercraft/internal/recommend"
	"github.com/jonathan/careercraft/internal/types"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Analyze skill gaps for the target careers",
	Long:  "Merges per-career skill gaps across the profile's target careers (largest gap wins for shared skills), producing a GapRecord JSON list sorted largest gap first.",
	RunE:  runGaps,
}

var (
	gapsProfile string
	gapsOutput  string
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsProfile, "profile", "p", "", "Path to input profile JSON file (required)")
	gapsCmd.Flags().StringVarP(&gapsOutput, "out", "o", "", "Path to output gaps JSON file (required)")

	if err := gapsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := gapsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(gapsProfile)
	if err != nil {
		return err
	}
	applyConfigTargets(profile, cfg)

	merged := recommend.MergeGaps(cat, profile.Skills, profile.TargetCareers)
	gaps := make([]types.GapRecord, 0, len(merged))
	for _, gap := range merged {
		gaps = append(gaps, gap)
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return gaps[i].Skill < gaps[j].Skill
	})

	if err := writeJSON(gapsOutput, gaps); err != nil {
		return err
	}

	if rootVerbose {
		observability.NewPrinter(os.Stdout).PrintGapAnalysis(gaps)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed %d skill gaps to %s\n", len(gaps), gapsOutput)
	return nil
}
