package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/config"
	"github.com/jonathan/careercraft/internal/types"
)

// profileInput is the self-assessment document the CLI commands consume.
// Every field is optional: missing skills default to the neutral rating at
// query time, missing frequencies read as "sometimes", and unknown names are
// ignored rather than rejected.
type profileInput struct {
	CurrentRole      string                    `json:"current_role,omitempty"`
	Skills           types.SkillRatings        `json:"skills,omitempty"`
	Practice         types.PracticeFrequencies `json:"practice,omitempty"`
	TargetCareers    []string                  `json:"target_careers,omitempty"`
	TargetCategories []types.Category          `json:"target_categories,omitempty"`
}

// loadProfile reads and parses a profile JSON file.
func loadProfile(path string) (*profileInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile profileInput
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}

	if profile.Skills == nil {
		profile.Skills = make(types.SkillRatings)
	}
	if profile.Practice == nil {
		profile.Practice = make(types.PracticeFrequencies)
	}
	return &profile, nil
}

// configDefaults are applied under any values from the --config file.
func configDefaults() config.Config {
	return config.Config{
		Port:            8080,
		SessionTTLHours: 24,
		SortBy:          "match",
	}
}

// loadConfig loads the --config file if given and merges it with defaults.
func loadConfig() (config.Config, error) {
	if rootConfig == "" {
		return configDefaults(), nil
	}

	cfg, err := config.LoadConfig(rootConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg.MergeWithDefaults(configDefaults()), nil
}

// loadCatalog resolves the catalog: --catalog flag first, then the config
// file's catalog path, then the built-in default.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	path := rootCatalog
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		return catalog.Default(), nil
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// applyConfigTargets fills profile targeting fields that the profile file
// left empty from the config defaults.
func applyConfigTargets(profile *profileInput, cfg config.Config) {
	if profile.CurrentRole == "" {
		profile.CurrentRole = cfg.CurrentRole
	}
	if len(profile.TargetCareers) == 0 {
		profile.TargetCareers = cfg.TargetCareers
	}
	if len(profile.TargetCategories) == 0 {
		for _, c := range cfg.TargetCategories {
			profile.TargetCategories = append(profile.TargetCategories, types.Category(c))
		}
	}
}

// writeJSON marshals v with indentation and writes it to path, creating the
// output directory if needed.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
