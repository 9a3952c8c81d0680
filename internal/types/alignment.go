package types

// AlignmentReport is the structured comparison of a resume's content
// against the job description it was built with. SectionScores holds raw
// cosine similarities in [-1, 1]; OverallMatch is scaled to a 0-100
// percentage. WeakSections lists sections scoring below the analyzer's
// threshold, in first-appearance order.
type AlignmentReport struct {
	OverallMatch  float64            `json:"overall_match"`
	SectionScores map[string]float64 `json:"section_scores"`
	WeakSections  []string           `json:"weak_sections"`
}
