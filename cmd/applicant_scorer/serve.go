package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-scorer/internal/server"
	"github.com/jonathan/applicant-scorer/internal/store"
)

var (
	servePort      int
	serveConfigKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes evaluation and grading endpoints backed by the content store.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigKey, "config-key", store.DefaultConfigKey, "Default scoring configuration key")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	dbURL := databaseURL(settings)
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	jwtSecret := os.Getenv("SCORER_JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = settings.JWTSecret
	}

	port := servePort
	if port == 8080 && settings.Port != 0 {
		port = settings.Port
	}

	cfg := server.Config{
		Port:             port,
		DatabaseURL:      dbURL,
		DefaultConfigKey: serveConfigKey,
		JWTSecret:        jwtSecret,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
