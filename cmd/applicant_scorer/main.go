// Package main provides the entry point for the Applicant Scorer HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "applicant_scorer",
	Short: "Police-applicant scoring HTTP API and CLI",
	Long:  "Applicant Scorer evaluates applicant profiles against weighted rule configurations and grades free-text interview answers, via REST API or one-shot CLI commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
