package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeWords builds a text of n distinct words so window boundaries are
// easy to check.
func makeWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	text := "senior backend engineer with go experience"

	chunks := Split(text, 200, 50)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestSplit_EmptyText(t *testing.T) {
	assert.Empty(t, Split("", 200, 50))
	assert.Empty(t, Split("   \n\t  ", 200, 50))
}

func TestSplit_WindowAdvanceAndOverlap(t *testing.T) {
	// 220 words, windows of 200 with 50 overlap: starts at 0 and 150.
	text := makeWords(220)

	chunks := Split(text, 200, 50)

	require.Len(t, chunks, 2)
	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	assert.Len(t, first, 200)
	assert.Len(t, second, 70)
	// The second window starts 150 words in, sharing 50 words with the first.
	assert.Equal(t, first[150:], second[:50])
	assert.Equal(t, "w150", second[0])
	assert.Equal(t, "w219", second[len(second)-1])
}

func TestSplit_CoverageReconstructsOriginal(t *testing.T) {
	// Concatenating the first chunk with each later chunk's non-overlapping
	// tail must reproduce the original word sequence.
	text := makeWords(517)
	maxWords, overlap := 200, 50

	chunks := Split(text, maxWords, overlap)
	require.NotEmpty(t, chunks)

	rebuilt := strings.Fields(chunks[0])
	for _, chunk := range chunks[1:] {
		words := strings.Fields(chunk)
		if len(words) > overlap {
			rebuilt = append(rebuilt, words[overlap:]...)
		}
	}

	assert.Equal(t, strings.Fields(text), rebuilt)
}

func TestSplit_ZeroOverlapPartitions(t *testing.T) {
	text := makeWords(600)

	chunks := Split(text, 250, 0)

	require.Len(t, chunks, 3)
	var rebuilt []string
	for _, chunk := range chunks {
		rebuilt = append(rebuilt, strings.Fields(chunk)...)
	}
	assert.Equal(t, strings.Fields(text), rebuilt)
}

func TestSplit_Deterministic(t *testing.T) {
	text := makeWords(333)

	first := Split(text, 200, 50)
	second := Split(text, 200, 50)

	assert.Equal(t, first, second)
}

func TestSplit_CollapsesWhitespace(t *testing.T) {
	chunks := Split("a  b\tc\n\nd", 10, 0)

	require.Len(t, chunks, 1)
	assert.Equal(t, "a b c d", chunks[0])
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount(" one  two\nthree "))
}
