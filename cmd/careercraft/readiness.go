package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/observability"
	"github.com/jonathan/careercraft/internal/scoring"
	"github.com/jonathan/careercraft/internal/types"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Score overall readiness for the target careers",
	Long:  "Computes the unweighted readiness score for each target career, averages them into an overall score, and maps it to a balanced/stretch/long-shot band, producing a readiness report JSON.",
	RunE:  runReadiness,
}

var (
	readinessProfile string
	readinessOutput  string
)

// readinessOutputDoc is the readiness command's output document.
type readinessOutputDoc struct {
	types.ReadinessReport
	PerCareer map[string]float64 `json:"per_career"`
}

func init() {
	readinessCmd.Flags().StringVarP(&readinessProfile, "profile", "p", "", "Path to input profile JSON file (required)")
	readinessCmd.Flags().StringVarP(&readinessOutput, "out", "o", "", "Path to output readiness JSON file (required)")

	if err := readinessCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := readinessCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(readinessCmd)
}

func runReadiness(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	profile, err := loadProfile(readinessProfile)
	if err != nil {
		return err
	}
	applyConfigTargets(profile, cfg)

	perCareer := make(map[string]float64)
	for _, name := range profile.TargetCareers {
		if _, ok := cat.Career(name); !ok {
			continue
		}
		perCareer[name] = scoring.Readiness(cat, profile.Skills, profile.Practice, name)
	}

	doc := readinessOutputDoc{
		ReadinessReport: scoring.ReadinessReport(cat, profile.Skills, profile.Practice, profile.TargetCareers),
		PerCareer:       perCareer,
	}

	if err := writeJSON(readinessOutput, doc); err != nil {
		return err
	}

	if rootVerbose {
		observability.NewPrinter(os.Stdout).PrintReadiness(&doc.ReadinessReport)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully scored readiness %.1f to %s\n", doc.Score, readinessOutput)
	return nil
}
