// Package main provides the entry point for the placement-readiness CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readiness_agent",
	Short: "Placement readiness analyzer",
	Long:  "Analyzes a job description against a company and role, producing categorized skill signals, a readiness score, a round map, a preparation checklist, a 7-day plan, and likely interview questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
