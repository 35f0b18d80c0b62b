package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-scorer/internal/engine"
	"github.com/jonathan/applicant-scorer/internal/schemas"
	"github.com/jonathan/applicant-scorer/internal/store"
	"github.com/jonathan/applicant-scorer/internal/types"
)

var (
	seedConfigPath string
	seedConfigKey  string
)

var seedConfigCmd = &cobra.Command{
	Use:   "seed-config",
	Short: "Load a scoring configuration document into the content store",
	Long: `Validate a scoring configuration JSON document against the schema and
store it under a key. Existing versions are kept; the newest is served.`,
	RunE: runSeedConfig,
}

func init() {
	seedConfigCmd.Flags().StringVar(&seedConfigPath, "file", "", "Path to scoring configuration JSON (required)")
	seedConfigCmd.Flags().StringVar(&seedConfigKey, "key", store.DefaultConfigKey, "Configuration key")
	_ = seedConfigCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedConfigCmd)
}

func runSeedConfig(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	document, err := os.ReadFile(seedConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	// Schema validation catches structural problems; engine validation
	// catches semantic ones (duplicate ids, unknown operators).
	if err := schemas.ValidateScoringConfigDocument(document); err != nil {
		return err
	}

	var cfg types.ScoringConfig
	if err := json.Unmarshal(document, &cfg); err != nil {
		return fmt.Errorf("failed to parse configuration JSON: %w", err)
	}

	warnings, err := engine.ValidateConfig(&cfg)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	db, err := store.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveConfig(cmd.Context(), seedConfigKey, &cfg); err != nil {
		return err
	}

	fmt.Printf("Stored configuration %s (version %s)\n", seedConfigKey, cfg.Version)
	return nil
}
