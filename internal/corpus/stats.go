package corpus

import (
	"regexp"
	"strings"

	"github.com/shubham/resume-roaster/internal/types"
)

// quantifiedWorkPattern spots measurable-impact phrasing in resume text:
// percentages, dollar figures, "N+" counts, and increased/reduced-by
// claims.
var quantifiedWorkPattern = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\+|increased by \d+|reduced by \d+`)

func hasQuantifiedWork(text string) bool {
	return quantifiedWorkPattern.MatchString(text)
}

// Stats derives summary statistics from corpus metadata alone. Figures
// that need the source document (BuildID, ResumeWords) stay empty; Build
// fills them for freshly built corpora.
func (c *Corpus) Stats() *types.BuildStats {
	stats := &types.BuildStats{
		TotalChunks:       c.Len(),
		Dimension:         c.Index.Dimension(),
		HasJobDescription: c.HasJobDescription(),
	}

	seen := make(map[string]bool)
	var resumeTexts []string
	for _, chunk := range c.Meta {
		if chunk.IsResumeContent() {
			stats.ResumeChunks++
			resumeTexts = append(resumeTexts, chunk.Text)
		} else {
			stats.JDChunks++
		}
		if chunk.Type == types.ChunkTypeSection && !seen[chunk.Section] {
			seen[chunk.Section] = true
			stats.Sections = append(stats.Sections, chunk.Section)
		}
	}
	stats.HasQuantifiedWork = hasQuantifiedWork(strings.Join(resumeTexts, " "))

	return stats
}
