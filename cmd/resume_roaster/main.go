// Package main provides the entry point for the Resume Roaster retrieval CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_roaster",
	Short: "Resume retrieval engine CLI",
	Long:  "Resume Roaster builds a searchable embedding corpus from a resume and an optional job description, then answers similarity queries, renders grounded context, and scores resume-to-job alignment.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
