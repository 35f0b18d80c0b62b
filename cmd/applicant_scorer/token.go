package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-scorer/internal/server"
)

var (
	tokenCaller string
	tokenHours  int
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the API",
	Long:  `Issue an HS256 bearer token signed with SCORER_JWT_SECRET, for deployments running with the auth gate enabled.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenCaller, "caller", "cli", "Caller identity embedded in the token")
	tokenCmd.Flags().IntVar(&tokenHours, "hours", 24, "Token lifetime in hours")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	secret := os.Getenv("SCORER_JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("SCORER_JWT_SECRET environment variable is required")
	}

	token, err := server.NewTokenService(secret, tokenHours).GenerateToken(tokenCaller)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
