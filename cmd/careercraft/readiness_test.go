package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadinessCommand_ReportWithPerCareerScores(t *testing.T) {
	resetFlags()
	readinessProfile = writeProfile(t, `{
		"skills": {
			"Programming": 90, "Problem Solving": 90, "Critical Thinking": 90,
			"Communication": 90, "Teamwork": 90, "Time Management": 90,
			"Creativity": 90, "Attention to Detail": 90
		},
		"practice": {"Programming": "often"},
		"target_careers": ["Software Developer", "Astronaut"]
	}`)
	readinessOutput = filepath.Join(t.TempDir(), "readiness.json")

	require.NoError(t, runReadiness(nil, nil))

	data, err := os.ReadFile(readinessOutput)
	require.NoError(t, err)

	var doc struct {
		Score      float64            `json:"score"`
		Band       struct{ Name string } `json:"band"`
		Disclaimer string             `json:"disclaimer"`
		PerCareer  map[string]float64 `json:"per_career"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Greater(t, doc.Score, 75.0, "uniform 90s with practice is balanced territory")
	assert.Equal(t, "balanced", doc.Band.Name)
	assert.NotEmpty(t, doc.Disclaimer)

	assert.Contains(t, doc.PerCareer, "Software Developer")
	assert.NotContains(t, doc.PerCareer, "Astronaut", "unknown targets are skipped, not scored")
}

func TestReadinessCommand_NoTargetsScoresZero(t *testing.T) {
	resetFlags()
	readinessProfile = writeProfile(t, `{"skills": {"Programming": 80}}`)
	readinessOutput = filepath.Join(t.TempDir(), "readiness.json")

	require.NoError(t, runReadiness(nil, nil))

	data, err := os.ReadFile(readinessOutput)
	require.NoError(t, err)

	var doc struct {
		Score float64 `json:"score"`
		Band  struct{ Name string } `json:"band"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Zero(t, doc.Score)
	assert.Equal(t, "long_shot", doc.Band.Name)
}
