package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shubham/resume-roaster/internal/observability"
	"github.com/shubham/resume-roaster/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the corpus for chunks similar to a query",
	Long: `Embeds the query and returns the top-k most similar chunks from the
current corpus, optionally restricted to one chunk type. Fewer than k
results means the corpus simply has fewer matching chunks.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCmd,
}

var (
	searchFlags sessionFlags
	searchTopK  int
	searchType  string
)

func init() {
	searchFlags.register(searchCmd)

	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "Number of results to return")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "Restrict results to one chunk type: overview, section, or job_description")

	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := searchFlags.merge(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK = searchTopK
	}

	filter := types.ChunkType(searchType)
	switch filter {
	case "", types.ChunkTypeOverview, types.ChunkTypeSection, types.ChunkTypeJobDescription:
	default:
		return fmt.Errorf("unknown chunk type %q; use overview, section, or job_description", searchType)
	}

	s, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	results, err := s.Search(ctx, args[0], cfg.TopK, filter)
	if err != nil {
		return describeReadError(err, cfg.DataDir)
	}
	if len(results) == 0 {
		fmt.Printf("No matching chunks found\n")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintSearchResults(results)
	return nil
}
