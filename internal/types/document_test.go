package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResumeDocument_ValidateValid(t *testing.T) {
	doc := &ResumeDocument{
		Sections: []ResumeSection{
			{Name: "Experience", Text: "Built and operated distributed systems."},
			{Name: "Education", Text: "BS Computer Science."},
		},
		CombinedText: "Built and operated distributed systems. BS Computer Science.",
	}

	assert.NoError(t, doc.Validate())
}

func TestResumeDocument_ValidateMissingCombinedText(t *testing.T) {
	doc := &ResumeDocument{
		Sections: []ResumeSection{{Name: "Experience", Text: "text"}},
	}

	assert.Error(t, doc.Validate())
}

func TestResumeDocument_ValidateEmptySectionName(t *testing.T) {
	doc := &ResumeDocument{
		Sections:     []ResumeSection{{Name: "", Text: "some text"}},
		CombinedText: "some text",
	}

	assert.Error(t, doc.Validate())
}

func TestResumeDocument_ValidateNoSections(t *testing.T) {
	// A document with only combined text is valid; the build then emits
	// just the overview chunk.
	doc := &ResumeDocument{CombinedText: "A short resume."}

	assert.NoError(t, doc.Validate())
}

func TestResumeDocument_TotalWords(t *testing.T) {
	doc := &ResumeDocument{CombinedText: "one two  three\nfour"}

	assert.Equal(t, 4, doc.TotalWords())
}
