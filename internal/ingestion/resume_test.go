package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResume(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadResumeDocument_Markdown(t *testing.T) {
	path := writeResume(t, "resume.md", `John Doe
john@example.com

# Experience
Led a team of five engineers.
Shipped a payments platform.

# Skills
- Go
- Kubernetes
`)

	doc, err := LoadResumeDocument(path)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Experience", doc.Sections[0].Name)
	assert.Equal(t, "Led a team of five engineers.\nShipped a payments platform.", doc.Sections[0].Text)
	assert.Equal(t, "Skills", doc.Sections[1].Name)
	assert.Equal(t, "- Go\n- Kubernetes", doc.Sections[1].Text)

	// The preamble belongs to no section but stays in the combined text
	assert.Contains(t, doc.CombinedText, "John Doe")
	assert.Contains(t, doc.CombinedText, "# Experience")
}

func TestLoadResumeDocument_MarkdownSubheadings(t *testing.T) {
	path := writeResume(t, "resume.md", `# Experience
Senior work.

## Earlier Roles
Junior work.
`)

	doc, err := LoadResumeDocument(path)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Experience", doc.Sections[0].Name)
	assert.Equal(t, "Earlier Roles", doc.Sections[1].Name)
}

func TestLoadResumeDocument_MarkdownNoHeadings(t *testing.T) {
	path := writeResume(t, "resume.md", "Just a paragraph about my career.\n")

	doc, err := LoadResumeDocument(path)
	require.NoError(t, err)

	assert.Empty(t, doc.Sections)
	assert.Equal(t, "Just a paragraph about my career.", doc.CombinedText)
}

func TestLoadResumeDocument_MarkdownEmpty(t *testing.T) {
	path := writeResume(t, "resume.md", "   \n\n  ")

	_, err := LoadResumeDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadResumeDocument_JSON(t *testing.T) {
	path := writeResume(t, "resume.json", `{
		"sections": [
			{"name": "Experience", "text": "Led   a   team."},
			{"name": "Skills", "text": "Go Kubernetes"}
		],
		"combined_text": "Led a team.\n\nGo Kubernetes"
	}`)

	doc, err := LoadResumeDocument(path)
	require.NoError(t, err)

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Led a team.", doc.Sections[0].Text)
	assert.Equal(t, "Led a team.\n\nGo Kubernetes", doc.CombinedText)
}

func TestLoadResumeDocument_JSONDefaultsCombinedText(t *testing.T) {
	path := writeResume(t, "resume.json", `{
		"sections": [
			{"name": "Experience", "text": "Led a team."},
			{"name": "Skills", "text": "Go Kubernetes"}
		]
	}`)

	doc, err := LoadResumeDocument(path)
	require.NoError(t, err)

	assert.Equal(t, "Experience\nLed a team.\n\nSkills\nGo Kubernetes", doc.CombinedText)
}

func TestLoadResumeDocument_JSONUppercaseExtension(t *testing.T) {
	path := writeResume(t, "resume.JSON", `{"sections": [{"name": "Skills", "text": "Go"}]}`)

	doc, err := LoadResumeDocument(path)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Skills\nGo", doc.CombinedText)
}

func TestLoadResumeDocument_JSONMalformed(t *testing.T) {
	path := writeResume(t, "resume.json", `{"sections": [`)

	_, err := LoadResumeDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode resume JSON")
}

func TestLoadResumeDocument_JSONFailsValidation(t *testing.T) {
	path := writeResume(t, "resume.json", `{"sections": [{"name": "", "text": "orphan"}], "combined_text": "orphan"}`)

	_, err := LoadResumeDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resume document")
}

func TestLoadResumeDocument_NotFound(t *testing.T) {
	_, err := LoadResumeDocument("/nonexistent/resume.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadResumeDocument_ProducesValidBuilderInput(t *testing.T) {
	path := writeResume(t, "resume.md", "# Experience\nLed a team.\n")

	doc, err := LoadResumeDocument(path)
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
	assert.Greater(t, doc.TotalWords(), 0)
}
