package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignCommand_ReportsScores(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dataDir := buildFixtureCorpus(t, true)

	cmd := exec.Command(binaryPath, "align", "--provider", "mock", "--data-dir", dataDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "align should succeed: %s", string(output))
	assert.Contains(t, string(output), "JD ALIGNMENT")
	assert.Contains(t, string(output), "Overall match:")
}

func TestAlignCommand_NoJobDescription(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dataDir := buildFixtureCorpus(t, false)

	cmd := exec.Command(binaryPath, "align", "--provider", "mock", "--data-dir", dataDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "align without a JD is not an error: %s", string(output))
	assert.Contains(t, string(output), "No job description attached")
}

func TestAlignCommand_NoCorpus(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "align",
		"--provider", "mock",
		"--data-dir", filepath.Join(t.TempDir(), "empty"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no corpus found")
}
