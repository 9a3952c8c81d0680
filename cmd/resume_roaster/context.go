package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context <query>",
	Short: "Render the most relevant resume chunks as a grounded context block",
	Long: `Retrieves the chunks most similar to the query and prints them grouped
under section headings with relevance scores, ready to embed in a prompt.
Job description chunks are excluded unless --include-jd is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runContextCmd,
}

var (
	contextFlags     sessionFlags
	contextTopK      int
	contextIncludeJD bool
)

func init() {
	contextFlags.register(contextCmd)

	contextCmd.Flags().IntVarP(&contextTopK, "top-k", "k", 0, "Number of chunks to retrieve")
	contextCmd.Flags().BoolVar(&contextIncludeJD, "include-jd", false, "Let job description chunks compete with resume content")

	rootCmd.AddCommand(contextCmd)
}

func runContextCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := contextFlags.merge(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK = contextTopK
	}

	s, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	rendered, err := s.RelevantContext(ctx, args[0], cfg.TopK, contextIncludeJD)
	if err != nil {
		return describeReadError(err, cfg.DataDir)
	}
	if rendered == "" {
		fmt.Printf("No matching chunks found\n")
		return nil
	}

	fmt.Println(rendered)
	return nil
}
