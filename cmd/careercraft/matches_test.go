package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careercraft/internal/types"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMatchesCommand_RanksAllCategoriesByDefault(t *testing.T) {
	resetFlags()
	matchesProfile = writeProfile(t, `{
		"skills": {"Programming": 90, "Problem Solving": 85}
	}`)
	matchesOutput = filepath.Join(t.TempDir(), "matches.json")

	require.NoError(t, runMatches(nil, nil))

	data, err := os.ReadFile(matchesOutput)
	require.NoError(t, err)

	var matches []types.CareerMatch
	require.NoError(t, json.Unmarshal(data, &matches))
	assert.Len(t, matches, 28)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchPct, matches[i].MatchPct)
	}
}

func TestMatchesCommand_CategoryFilterAndSort(t *testing.T) {
	resetFlags()
	matchesProfile = writeProfile(t, `{
		"skills": {"Communication": 80},
		"target_categories": ["Business"]
	}`)
	matchesOutput = filepath.Join(t.TempDir(), "matches.json")
	matchesSort = "salary"

	require.NoError(t, runMatches(nil, nil))

	data, err := os.ReadFile(matchesOutput)
	require.NoError(t, err)

	var matches []types.CareerMatch
	require.NoError(t, json.Unmarshal(data, &matches))
	require.NotEmpty(t, matches)
	for i, m := range matches {
		assert.Equal(t, types.CategoryBusiness, m.Category)
		if i > 0 {
			assert.GreaterOrEqual(t, matches[i-1].MedianSalary, m.MedianSalary)
		}
	}
}

func TestMatchesCommand_MissingProfileFile(t *testing.T) {
	resetFlags()
	matchesProfile = "/nonexistent/profile.json"
	matchesOutput = filepath.Join(t.TempDir(), "matches.json")

	err := runMatches(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}

func TestMatchesCommand_InvalidProfileJSON(t *testing.T) {
	resetFlags()
	matchesProfile = writeProfile(t, `{ not json`)
	matchesOutput = filepath.Join(t.TempDir(), "matches.json")

	err := runMatches(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal profile JSON")
}

func TestMatchesCommand_ConfigDefaultsApply(t *testing.T) {
	resetFlags()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"target_categories": ["Healthcare"]
	}`), 0644))
	rootConfig = configPath

	matchesProfile = writeProfile(t, `{"skills": {"Communication": 70}}`)
	matchesOutput = filepath.Join(tmpDir, "matches.json")

	require.NoError(t, runMatches(nil, nil))

	data, err := os.ReadFile(matchesOutput)
	require.NoError(t, err)

	var matches []types.CareerMatch
	require.NoError(t, json.Unmarshal(data, &matches))
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, types.CategoryHealthcare, m.Category)
	}
}
