package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shubham/resume-roaster/internal/config"
	"github.com/shubham/resume-roaster/internal/corpus"
	"github.com/shubham/resume-roaster/internal/embedding"
	"github.com/shubham/resume-roaster/internal/session"
)

// sessionFlags are the flags every command shares: where the corpus
// lives, which embedding backend to use, and retrieval tuning. Values
// from a config file act as defaults; explicitly set flags win.
type sessionFlags struct {
	configPath    string
	dataDir       string
	provider      string
	model         string
	apiKey        string
	overfetch     int
	weakThreshold float64
	maxKeywords   int
	verbose       bool
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config file, JSON or YAML (values can be overridden by other flags)")
	cmd.Flags().StringVar(&f.dataDir, "data-dir", "", "Directory holding corpus artifacts (default \"data\")")
	cmd.Flags().StringVar(&f.provider, "provider", "", "Embedding provider: gemini, openai, or mock (default gemini)")
	cmd.Flags().StringVar(&f.model, "model", "", "Embedding model override")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "Provider API key (optional, defaults to GEMINI_API_KEY or OPENAI_API_KEY env var)")
	cmd.Flags().IntVar(&f.overfetch, "overfetch", 0, "Candidate multiplier for type-filtered searches")
	cmd.Flags().Float64Var(&f.weakThreshold, "weak-threshold", 0, "Section score below this counts as weak (0-1)")
	cmd.Flags().IntVar(&f.maxKeywords, "max-keywords", 0, "Cap on extracted job description keywords")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// merge loads the config file if given, applies explicitly set flags on
// top, fills remaining gaps from defaults, and validates the result.
func (f *sessionFlags) merge(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		loadedCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if f.verbose {
			fmt.Printf("Loaded config from: %s\n", f.configPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = f.provider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = f.model
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = f.apiKey
	}
	if cmd.Flags().Changed("overfetch") {
		cfg.Overfetch = f.overfetch
	}
	if cmd.Flags().Changed("weak-threshold") {
		cfg.WeakThreshold = f.weakThreshold
	}
	if cmd.Flags().Changed("max-keywords") {
		cfg.MaxKeywords = f.maxKeywords
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		DataDir:  config.DefaultDataDir,
		Provider: string(embedding.ProviderGemini),
		TopK:     config.DefaultTopK,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newSession constructs the embedder for the configured provider and
// wires it into a session over the configured data directory.
func newSession(ctx context.Context, cfg config.Config) (*session.Session, error) {
	embedder, err := embedding.NewEmbedder(ctx, &embedding.Config{
		Provider: embedding.Provider(cfg.Provider),
		Model:    cfg.Model,
	}, resolveAPIKey(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding backend: %w", err)
	}

	store := corpus.NewStore(cfg.DataDir)
	opts := session.Options{
		Params: corpus.Params{
			SectionMaxWords: cfg.ChunkWords,
			SectionOverlap:  cfg.ChunkOverlap,
			JDMaxWords:      cfg.JDChunkWords,
		},
		Overfetch:     cfg.Overfetch,
		WeakThreshold: cfg.WeakThreshold,
		MaxKeywords:   cfg.MaxKeywords,
		Verbose:       cfg.Verbose,
	}
	return session.New(embedder, store, opts), nil
}

// resolveAPIKey falls back to the provider's conventional env var when
// no key was given. The mock backend needs none.
func resolveAPIKey(cfg config.Config) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	switch embedding.Provider(cfg.Provider) {
	case embedding.ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case embedding.ProviderMock:
		return ""
	default:
		return os.Getenv("GEMINI_API_KEY")
	}
}

// describeReadError turns the missing-corpus sentinel into an
// actionable message; everything else passes through.
func describeReadError(err error, dataDir string) error {
	if errors.Is(err, corpus.ErrNoIndex) {
		return fmt.Errorf("no corpus found in %s; run 'resume_roaster build' first", dataDir)
	}
	return err
}
