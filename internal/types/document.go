package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeSection is one named, already-cleaned section of a resume.
// Section order is meaningful and preserved through the build.
type ResumeSection struct {
	Name string `json:"name" validate:"required,min=1"`
	Text string `json:"text" validate:"required,min=1"`
}

// ResumeDocument is the parsed-resume input to a corpus build: an ordered
// list of sections plus the combined full text. Both are assumed already
// cleaned by the upstream parser; the engine does not classify sections.
type ResumeDocument struct {
	Sections     []ResumeSection `json:"sections" validate:"dive"`
	CombinedText string          `json:"combined_text" validate:"required,min=1"`
}

// Validate validates the ResumeDocument using the validator.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// TotalWords returns the word count of the combined text.
func (d *ResumeDocument) TotalWords() int {
	return len(strings.Fields(d.CombinedText))
}
