package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shubham/resume-roaster/internal/observability"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract likely keywords from the job description",
	Long: `Pulls candidate keywords out of the corpus's job description chunks:
capitalized phrases, acronyms, and known technical terms. Requires a
corpus built with a job description.`,
	RunE: runKeywordsCmd,
}

var keywordsFlags sessionFlags

func init() {
	keywordsFlags.register(keywordsCmd)
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywordsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := keywordsFlags.merge(cmd)
	if err != nil {
		return err
	}

	s, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	keywords, err := s.Keywords()
	if err != nil {
		return describeReadError(err, cfg.DataDir)
	}
	if len(keywords) == 0 {
		fmt.Printf("No job description attached to the current corpus; rebuild with --job or --job-url\n")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintKeywords(keywords)
	return nil
}
