package types

// BuildStats summarizes a corpus for reporting and verbose output.
// BuildID and ResumeWords are known only at build time; stats derived
// from a loaded corpus leave them empty.
type BuildStats struct {
	BuildID           string   `json:"build_id,omitempty"`
	TotalChunks       int      `json:"total_chunks"`
	ResumeChunks      int      `json:"resume_chunks"`
	JDChunks          int      `json:"jd_chunks"`
	Dimension         int      `json:"dimension"`
	Sections          []string `json:"sections"`
	ResumeWords       int      `json:"resume_words,omitempty"`
	HasJobDescription bool     `json:"has_job_description"`
	// HasQuantifiedWork reports whether the resume text contains
	// measurable-achievement signals (percentages, dollar figures,
	// "increased by N" phrasing).
	HasQuantifiedWork bool `json:"has_quantified_work"`
}
