// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shubham/resume-roaster/internal/embedding"
)

// DefaultDataDir is where corpus artifacts live unless overridden.
const DefaultDataDir = "data"

// DefaultTopK is the default number of search results.
const DefaultTopK = 5

// Config represents the CLI configuration loadable from a JSON or YAML
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Resume  string `json:"resume,omitempty" yaml:"resume,omitempty"`     // Path to resume Markdown or JSON file
	Job     string `json:"job,omitempty" yaml:"job,omitempty"`           // Path to job description text file
	JobURL  string `json:"job_url,omitempty" yaml:"job_url,omitempty"`   // URL to fetch job posting from
	DataDir string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"` // Directory holding corpus artifacts

	// Embedding backend
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"` // gemini, openai, or mock
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`       // Embedding model override
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty"`   // API key for the provider

	// Retrieval tuning
	TopK          int     `json:"top_k,omitempty" yaml:"top_k,omitempty"`                   // Results per query
	Overfetch     int     `json:"overfetch,omitempty" yaml:"overfetch,omitempty"`           // Candidate multiplier for filtered searches
	WeakThreshold float64 `json:"weak_threshold,omitempty" yaml:"weak_threshold,omitempty"` // Section score below this is weak (0-1)
	MaxKeywords   int     `json:"max_keywords,omitempty" yaml:"max_keywords,omitempty"`     // Cap on extracted JD keywords

	// Chunking
	ChunkWords   int `json:"chunk_words,omitempty" yaml:"chunk_words,omitempty"`       // Words per resume section chunk
	ChunkOverlap int `json:"chunk_overlap,omitempty" yaml:"chunk_overlap,omitempty"`   // Overlapping words between section chunks
	JDChunkWords int `json:"jd_chunk_words,omitempty" yaml:"jd_chunk_words,omitempty"` // Words per job description chunk

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty" yaml:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON or YAML file, picked by
// extension (.yaml/.yml versus anything else).
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required
// fields are not checked here; CLI flag validation handles those after
// merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Overfetch < 0 {
		return fmt.Errorf("config error: 'overfetch' must be non-negative")
	}
	if c.MaxKeywords < 0 {
		return fmt.Errorf("config error: 'max_keywords' must be non-negative")
	}
	if c.ChunkWords < 0 {
		return fmt.Errorf("config error: 'chunk_words' must be non-negative")
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("config error: 'chunk_overlap' must be non-negative")
	}
	if c.JDChunkWords < 0 {
		return fmt.Errorf("config error: 'jd_chunk_words' must be non-negative")
	}
	if c.WeakThreshold < 0 || c.WeakThreshold > 1 {
		return fmt.Errorf("config error: 'weak_threshold' must be between 0 and 1")
	}
	if c.ChunkWords > 0 && c.ChunkOverlap >= c.ChunkWords {
		return fmt.Errorf("config error: 'chunk_overlap' must be smaller than 'chunk_words'")
	}

	switch embedding.Provider(c.Provider) {
	case "", embedding.ProviderGemini, embedding.ProviderOpenAI, embedding.ProviderMock:
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Overfetch == 0 {
		result.Overfetch = defaults.Overfetch
	}
	if result.MaxKeywords == 0 {
		result.MaxKeywords = defaults.MaxKeywords
	}
	if result.ChunkWords == 0 {
		result.ChunkWords = defaults.ChunkWords
	}
	if result.ChunkOverlap == 0 {
		result.ChunkOverlap = defaults.ChunkOverlap
	}
	if result.JDChunkWords == 0 {
		result.JDChunkWords = defaults.JDChunkWords
	}
	if result.WeakThreshold == 0 {
		result.WeakThreshold = defaults.WeakThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
