package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shubham/resume-roaster/internal/observability"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Score the resume against the job description it was built with",
	Long: `Compares every resume chunk against the whole-job-description embedding
and reports the overall match percentage, per-section scores, and the
sections scoring below the weak threshold. Requires a corpus built with a
job description.`,
	RunE: runAlignCmd,
}

var alignFlags sessionFlags

func init() {
	alignFlags.register(alignCmd)
	rootCmd.AddCommand(alignCmd)
}

func runAlignCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := alignFlags.merge(cmd)
	if err != nil {
		return err
	}

	s, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}

	report, err := s.CompareToJD(ctx)
	if err != nil {
		return describeReadError(err, cfg.DataDir)
	}
	if report == nil {
		fmt.Printf("No job description attached to the current corpus; rebuild with --job or --job-url\n")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintAlignmentReport(report)
	return nil
}
