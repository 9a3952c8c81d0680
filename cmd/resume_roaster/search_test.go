package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFixtureCorpus runs a mock-provider build and returns the data dir.
func buildFixtureCorpus(t *testing.T, withJob bool) string {
	t.Helper()
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resume := writeResumeFixture(t, tmpDir)
	dataDir := filepath.Join(tmpDir, "data")

	args := []string{"build", "--provider", "mock", "--resume", resume, "--data-dir", dataDir}
	if withJob {
		args = append(args, "--job", writeJobFixture(t, tmpDir))
	}
	cmd := exec.Command(binaryPath, args...)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "fixture build should succeed: %s", string(output))

	return dataDir
}

func TestSearchCommand_NoCorpus(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "search", "experience",
		"--provider", "mock",
		"--data-dir", filepath.Join(t.TempDir(), "empty"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no corpus found")
	assert.Contains(t, string(output), "resume_roaster build")
}

func TestSearchCommand_FindsChunks(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dataDir := buildFixtureCorpus(t, false)

	cmd := exec.Command(binaryPath, "search", "distributed systems kubernetes",
		"--provider", "mock", "--data-dir", dataDir, "--top-k", "3")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "search should succeed: %s", string(output))
	assert.Contains(t, string(output), "TOP MATCHING CHUNKS")
}

func TestSearchCommand_TypeFilter(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dataDir := buildFixtureCorpus(t, true)

	cmd := exec.Command(binaryPath, "search", "kubernetes",
		"--provider", "mock", "--data-dir", dataDir, "--type", "job_description")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "filtered search should succeed: %s", string(output))
	assert.Contains(t, string(output), "Job Description")
}

func TestSearchCommand_UnknownType(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "search", "anything",
		"--provider", "mock", "--type", "paragraph",
		"--data-dir", t.TempDir())
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown chunk type")
}

func TestSearchCommand_MissingQuery(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "search", "--provider", "mock")
	_, err := cmd.CombinedOutput()

	assert.Error(t, err)
}
