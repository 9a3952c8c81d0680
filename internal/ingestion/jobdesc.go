package ingestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shubham/resume-roaster/internal/fetch"
)

// Source records where a job description came from, for provenance in
// verbose output and saved run summaries.
type Source struct {
	URL         string    `json:"url,omitempty"`
	Path        string    `json:"path,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	Hash        string    `json:"hash"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

// JobDescriptionFromFile reads a job description from a plain-text or
// Markdown file and cleans it.
func JobDescriptionFromFile(path string) (string, *Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("job description file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read job description: %w", err)
	}

	cleaned := CleanText(string(content))
	if cleaned == "" {
		return "", nil, fmt.Errorf("job description file %s is empty", path)
	}

	source := &Source{
		Path:        path,
		Hash:        contentHash(cleaned),
		RetrievedAt: time.Now().UTC(),
	}
	return cleaned, source, nil
}

// JobDescriptionFromURL fetches a job posting, extracts its description
// text, and cleans it. opts controls timeouts and the headless-browser
// fallback for client-rendered boards.
func JobDescriptionFromURL(ctx context.Context, urlStr string, opts *fetch.Options) (string, *Source, error) {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}

	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	result, err := fetch.Posting(ctx, urlStr, opts)
	if err != nil {
		return "", nil, err
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(result.Text))
	}

	cleaned := CleanText(result.Text)
	if cleaned == "" {
		return "", nil, &fetch.Error{URL: urlStr, Message: "posting contained no extractable text"}
	}

	source := &Source{
		URL:         urlStr,
		Platform:    string(platform),
		Hash:        contentHash(cleaned),
		RetrievedAt: time.Now().UTC(),
	}
	return cleaned, source, nil
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
