package alignment

import (
	"regexp"
	"strings"

	"github.com/shubham/resume-roaster/internal/corpus"
	"github.com/shubham/resume-roaster/internal/types"
)

// Capitalized word sequences and acronyms are the likeliest role-specific
// terms in a posting; the fixed vocabulary catches common technologies
// written in any case.
var (
	capitalizedPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b|\b[A-Z]{2,}\b`)
	techTermPattern    = regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|React|AWS|Docker|Kubernetes|SQL|Node\.js|TypeScript|Go|Ruby|C\+\+|C#|Swift|Kotlin|Scala|MongoDB|PostgreSQL|Redis|Git|CI/CD|Agile|Scrum|REST|API|Machine Learning|AI|DevOps|Cloud|Linux|Azure|GCP)\b`)
)

var keywordStopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
	"this": true, "that": true, "from": true, "will": true,
	"can": true, "are": true, "our": true, "your": true,
}

// ExtractKeywords pulls candidate keywords from the corpus's job
// description chunks: capitalized sequences, acronyms, and known
// technical terms, deduplicated, with stopwords and very short terms
// dropped, capped at the analyzer's keyword limit. The returned order is
// first occurrence in the posting but callers should treat the result as
// a set.
func (a *Analyzer) ExtractKeywords(c *corpus.Corpus) []string {
	var jdParts []string
	for _, chunk := range c.Meta {
		if chunk.Type == types.ChunkTypeJobDescription {
			jdParts = append(jdParts, chunk.Text)
		}
	}
	if len(jdParts) == 0 {
		return nil
	}
	jdText := strings.Join(jdParts, " ")

	candidates := capitalizedPattern.FindAllString(jdText, -1)
	candidates = append(candidates, techTermPattern.FindAllString(jdText, -1)...)

	seen := make(map[string]bool)
	var keywords []string
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true

		if len(candidate) <= 2 || keywordStopwords[strings.ToLower(candidate)] {
			continue
		}
		keywords = append(keywords, candidate)
		if len(keywords) == a.maxKeywords {
			break
		}
	}
	return keywords
}
