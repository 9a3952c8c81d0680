package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shubham/resume-roaster/internal/fetch"
	"github.com/shubham/resume-roaster/internal/ingestion"
	"github.com/shubham/resume-roaster/internal/observability"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the searchable corpus from a resume and an optional job description",
	Long: `Chunks the resume (and job description, when given), embeds every chunk
in one batch, and persists the index, chunk metadata, and job description
embedding to the data directory. A build fully replaces any previous corpus.

Configuration can be loaded from a JSON or YAML file using --config.
Command-line arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildFlags        sessionFlags
	buildResume       string
	buildJob          string
	buildJobURL       string
	buildChunkWords   int
	buildChunkOverlap int
	buildJDChunkWords int
	buildUseBrowser   bool
)

func init() {
	buildFlags.register(buildCmd)

	buildCmd.Flags().StringVarP(&buildResume, "resume", "r", "", "Path to resume Markdown or JSON file")
	buildCmd.Flags().StringVarP(&buildJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	buildCmd.Flags().StringVar(&buildJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	buildCmd.Flags().IntVar(&buildChunkWords, "chunk-words", 0, "Words per resume section chunk")
	buildCmd.Flags().IntVar(&buildChunkOverlap, "chunk-overlap", 0, "Overlapping words between section chunks")
	buildCmd.Flags().IntVar(&buildJDChunkWords, "jd-chunk-words", 0, "Words per job description chunk")
	buildCmd.Flags().BoolVar(&buildUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")

	rootCmd.AddCommand(buildCmd)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := buildFlags.merge(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = buildResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = buildJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = buildJobURL
	}
	if cmd.Flags().Changed("chunk-words") {
		cfg.ChunkWords = buildChunkWords
	}
	if cmd.Flags().Changed("chunk-overlap") {
		cfg.ChunkOverlap = buildChunkOverlap
	}
	if cmd.Flags().Changed("jd-chunk-words") {
		cfg.JDChunkWords = buildJDChunkWords
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = buildUseBrowser
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if cfg.ChunkWords > 0 && cfg.ChunkOverlap >= cfg.ChunkWords {
		return fmt.Errorf("--chunk-overlap must be smaller than --chunk-words")
	}

	fmt.Printf("Step 1/3: Loading resume from %s\n", cfg.Resume)
	doc, err := ingestion.LoadResumeDocument(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	var jobDescription string
	switch {
	case cfg.Job != "":
		fmt.Printf("Step 2/3: Loading job description from %s\n", cfg.Job)
		jobDescription, _, err = ingestion.JobDescriptionFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
	case cfg.JobURL != "":
		fmt.Printf("Step 2/3: Fetching job description from %s\n", cfg.JobURL)
		opts := fetch.DefaultOptions()
		opts.UseBrowser = cfg.UseBrowser
		opts.Verbose = cfg.Verbose
		jobDescription, _, err = ingestion.JobDescriptionFromURL(ctx, cfg.JobURL, opts)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	default:
		fmt.Printf("Step 2/3: No job description given, skipping\n")
	}

	fmt.Printf("Step 3/3: Embedding and indexing\n")
	s, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	stats, err := s.Build(ctx, doc, jobDescription)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintBuildStats(stats)
	fmt.Printf("Corpus written to %s\n", cfg.DataDir)
	return nil
}
