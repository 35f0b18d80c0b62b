package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-scorer/internal/fetch"
	"github.com/jonathan/applicant-scorer/internal/roster"
	"github.com/jonathan/applicant-scorer/internal/store"
	"github.com/jonathan/applicant-scorer/internal/types"
)

var (
	rosterOrgID        string
	rosterOrgName      string
	rosterJurisdiction string
	rosterURL          string
	rosterPrograms     []string
	rosterUnits        []string
	rosterSworn        int
)

var syncRosterCmd = &cobra.Command{
	Use:   "sync-roster",
	Short: "Fetch a service's leadership page and update its org context",
	Long: `Fetch the public leadership/command page of a police service, parse the
roster, and upsert the organization context used for grading enrichment.`,
	RunE: runSyncRoster,
}

func init() {
	syncRosterCmd.Flags().StringVar(&rosterOrgID, "org", "", "Organization id, e.g. tps (required)")
	syncRosterCmd.Flags().StringVar(&rosterOrgName, "name", "", "Organization display name (required)")
	syncRosterCmd.Flags().StringVar(&rosterURL, "url", "", "Leadership page URL (required)")
	syncRosterCmd.Flags().StringVar(&rosterJurisdiction, "jurisdiction", "", "Jurisdiction served")
	syncRosterCmd.Flags().StringSliceVar(&rosterPrograms, "programs", nil, "Program names")
	syncRosterCmd.Flags().StringSliceVar(&rosterUnits, "units", nil, "Unit names")
	syncRosterCmd.Flags().IntVar(&rosterSworn, "sworn-members", 0, "Sworn member count")
	_ = syncRosterCmd.MarkFlagRequired("org")
	_ = syncRosterCmd.MarkFlagRequired("name")
	_ = syncRosterCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(syncRosterCmd)
}

func runSyncRoster(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	page, err := fetch.URL(cmd.Context(), rosterURL, nil)
	if err != nil {
		return err
	}

	leadership, err := roster.ParseLeadership(page.HTML)
	if err != nil {
		return fmt.Errorf("failed to parse roster from %s: %w", rosterURL, err)
	}

	orgCtx := &types.OrgContext{
		ID:           rosterOrgID,
		Name:         rosterOrgName,
		Jurisdiction: rosterJurisdiction,
		Programs:     rosterPrograms,
		Units:        rosterUnits,
		SwornMembers: rosterSworn,
		Leadership:   leadership,
	}

	db, err := store.Connect(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.UpsertOrgContext(cmd.Context(), orgCtx); err != nil {
		return err
	}

	names := make([]string, 0, len(leadership))
	for _, member := range leadership {
		names = append(names, member.Name)
	}
	fmt.Printf("Updated %s with %d leadership members: %s\n",
		rosterOrgID, len(leadership), strings.Join(names, ", "))
	return nil
}
