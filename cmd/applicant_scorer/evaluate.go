package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-scorer/internal/engine"
	"github.com/jonathan/applicant-scorer/internal/observability"
	"github.com/jonathan/applicant-scorer/internal/store"
	"github.com/jonathan/applicant-scorer/internal/types"
)

var (
	evaluateProfilePath string
	evaluateConfigPath  string
	evaluateConfigKey   string
	evaluateVerbose     bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate an applicant profile against a scoring configuration",
	Long: `Evaluate a profile JSON file against a scoring configuration, supplied either
as a local JSON file (--config) or resolved by key from the content store (--config-key,
requires DATABASE_URL). Prints the evaluation result as JSON.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateProfilePath, "profile", "", "Path to applicant profile JSON (required)")
	evaluateCmd.Flags().StringVar(&evaluateConfigPath, "config", "", "Path to scoring configuration JSON")
	evaluateCmd.Flags().StringVar(&evaluateConfigKey, "config-key", "", "Scoring configuration key in the content store")
	evaluateCmd.Flags().BoolVar(&evaluateVerbose, "verbose", false, "Print a formatted breakdown")
	_ = evaluateCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	configPath := evaluateConfigPath
	if configPath == "" {
		configPath = settings.ConfigFile
	}
	configKey := evaluateConfigKey
	if configKey == "" {
		configKey = settings.ConfigKey
	}
	verbose := evaluateVerbose || settings.Verbose

	data, err := os.ReadFile(evaluateProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	var profile map[string]interface{}
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	cfg, err := loadScoringConfig(cmd.Context(), configPath, configKey, databaseURL(settings))
	if err != nil {
		return err
	}

	warnings, err := engine.ValidateConfig(cfg)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	result, err := engine.Evaluate(profile, cfg)
	if err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintEvaluation(result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// loadScoringConfig loads a configuration from a file, or from the content
// store when only a key is given.
func loadScoringConfig(ctx context.Context, path, key, dbURL string) (*types.ScoringConfig, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read scoring config: %w", err)
		}
		var cfg types.ScoringConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse scoring config JSON: %w", err)
		}
		return &cfg, nil
	}

	if dbURL == "" {
		return nil, fmt.Errorf("either --config or DATABASE_URL (with --config-key) is required")
	}
	if key == "" {
		key = store.DefaultConfigKey
	}

	db, err := store.Connect(ctx, dbURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.GetConfig(ctx, key)
}
