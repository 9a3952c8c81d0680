// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shubham/resume-roaster/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBuildStats outputs a human-readable summary of a corpus build.
func (p *Printer) PrintBuildStats(stats *types.BuildStats) {
	if stats == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Chunks:     %d (%d resume, %d job description)\n", stats.TotalChunks, stats.ResumeChunks, stats.JDChunks))
	sb.WriteString(fmt.Sprintf("Dimension:  %d\n", stats.Dimension))
	if stats.ResumeWords > 0 {
		sb.WriteString(fmt.Sprintf("Words:      %d\n", stats.ResumeWords))
	}
	sb.WriteString("\n")

	if len(stats.Sections) > 0 {
		sb.WriteString("Sections:\n")
		count := min(len(stats.Sections), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", stats.Sections[i]))
		}
		if len(stats.Sections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.Sections)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if stats.HasQuantifiedWork {
		sb.WriteString("✓ quantified accomplishments found\n")
	} else {
		sb.WriteString("⚠ no quantified accomplishments found\n")
	}
	if !stats.HasJobDescription {
		sb.WriteString("⚠ no job description attached\n")
	}

	p.printBox("CORPUS BUILD SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSearchResults outputs the ranked chunks returned for one query.
func (p *Printer) PrintSearchResults(results []types.ScoredChunk) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d chunks:\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%.2f)\n", i+1, result.Section, result.Similarity))
		text := strings.ReplaceAll(result.Text, "\n", " ")
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", text))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more chunks", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHING CHUNKS", sb.String())
}

// PrintAlignmentReport outputs the resume-to-JD comparison scores.
func (p *Printer) PrintAlignmentReport(report *types.AlignmentReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall match: %.1f%%\n", report.OverallMatch))

	if len(report.SectionScores) > 0 {
		sb.WriteString("\nSection scores:\n")
		names := make([]string, 0, len(report.SectionScores))
		for name := range report.SectionScores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("  %-24s %.2f\n", name, report.SectionScores[name]))
		}
	}

	if len(report.WeakSections) > 0 {
		sb.WriteString("\nWeak sections:\n")
		for _, name := range report.WeakSections {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", name))
		}
	} else {
		sb.WriteString("\n✓ no weak sections\n")
	}

	p.printBox("JD ALIGNMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs keywords extracted from the job description.
func (p *Printer) PrintKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d keywords:\n\n", len(keywords)))

	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}

	p.printBox("JOB DESCRIPTION KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}
