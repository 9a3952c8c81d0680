// Package chunker splits cleaned text into overlapping word-window chunks
// sized for the embedding model.
package chunker

import "strings"

// Default window parameters for resume section text.
const (
	// DefaultMaxWords is the window size in words.
	DefaultMaxWords = 200
	// DefaultOverlap is how many words consecutive windows share.
	DefaultOverlap = 50
)

// Split cuts text into successive windows of maxWords whitespace-separated
// words. Each window starts maxWords-overlap words after the previous one,
// so consecutive chunks share overlap words. Empty windows are dropped.
//
// overlap must be strictly less than maxWords or the window never
// advances; callers own that precondition.
func Split(text string, maxWords, overlap int) []string {
	words := strings.Fields(text)

	var chunks []string
	step := maxWords - overlap
	for i := 0; i < len(words); i += step {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		chunks = append(chunks, chunk)
	}

	return chunks
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
