package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsultCommand_WritesResponseFile(t *testing.T) {
	resetFlags()
	consultProfile = writeProfile(t, `{
		"current_role": "QA Engineer",
		"skills": {"Programming": 30},
		"target_careers": ["Software Developer"]
	}`)
	consultMessage = "show my skill gaps"
	consultOutput = filepath.Join(t.TempDir(), "reply.md")

	require.NoError(t, runConsult(nil, nil))

	data, err := os.ReadFile(consultOutput)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Skill Gap Analysis")
	assert.Contains(t, string(data), "Programming")
}

func TestConsultCommand_DeterministicReplies(t *testing.T) {
	resetFlags()
	profile := writeProfile(t, `{
		"skills": {"Programming": 30},
		"target_careers": ["Software Developer"]
	}`)

	read := func(out string) string {
		t.Helper()
		resetFlags()
		consultProfile = profile
		consultMessage = "what is the roi?"
		consultOutput = out
		require.NoError(t, runConsult(nil, nil))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		return string(data)
	}

	tmpDir := t.TempDir()
	first := read(filepath.Join(tmpDir, "a.md"))
	second := read(filepath.Join(tmpDir, "b.md"))
	assert.Equal(t, first, second)
}
