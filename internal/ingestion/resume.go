package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shubham/resume-roaster/internal/types"
)

// LoadResumeDocument reads a resume from a Markdown or JSON file. A
// .json extension selects the structured form; anything else is parsed
// as Markdown with #-headings delimiting sections.
func LoadResumeDocument(path string) (*types.ResumeDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("resume file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return resumeFromJSON(content)
	default:
		return resumeFromMarkdown(string(content))
	}
}

// resumeFromJSON decodes {"sections": [{"name", "text"}...],
// "combined_text": "..."}. Combined text defaults to the sections
// joined in order when absent.
func resumeFromJSON(data []byte) (*types.ResumeDocument, error) {
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode resume JSON: %w", err)
	}

	for i := range doc.Sections {
		doc.Sections[i].Text = CleanText(doc.Sections[i].Text)
	}
	if strings.TrimSpace(doc.CombinedText) == "" {
		doc.CombinedText = joinSections(doc.Sections)
	} else {
		doc.CombinedText = CleanText(doc.CombinedText)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume document: %w", err)
	}
	return &doc, nil
}

// resumeFromMarkdown splits a Markdown resume on #-headings. Text
// before the first heading belongs to no section but stays in the
// combined text.
func resumeFromMarkdown(content string) (*types.ResumeDocument, error) {
	cleaned := CleanText(content)
	if cleaned == "" {
		return nil, fmt.Errorf("resume file is empty")
	}

	var (
		sections []types.ResumeSection
		name     string
		body     []string
	)
	flush := func() {
		if name == "" {
			return
		}
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if text != "" {
			sections = append(sections, types.ResumeSection{Name: name, Text: text})
		}
	}

	for _, line := range strings.Split(cleaned, "\n") {
		if strings.HasPrefix(line, "#") {
			flush()
			name = strings.TrimSpace(strings.TrimLeft(line, "#"))
			body = nil
			continue
		}
		body = append(body, line)
	}
	flush()

	doc := &types.ResumeDocument{Sections: sections, CombinedText: cleaned}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume document: %w", err)
	}
	return doc, nil
}

func joinSections(sections []types.ResumeSection) string {
	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString(s.Name)
		sb.WriteString("\n")
		sb.WriteString(s.Text)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}
