package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/applicant-scorer/internal/grading"
	"github.com/jonathan/applicant-scorer/internal/observability"
	"github.com/jonathan/applicant-scorer/internal/store"
	"github.com/jonathan/applicant-scorer/internal/types"
)

var (
	gradeQuestionKey string
	gradeAnswerPath  string
	gradeOrgID       string
	gradeVerbose     bool
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a free-text interview answer",
	Long: `Grade an interview answer against the built-in rubric for a question
category. The answer is read from --answer (a file path) or stdin. With --org and
DATABASE_URL set, the organization's reference data feeds the enrichment bonus.
Known question keys: ` + strings.Join(grading.QuestionKeys(), ", ") + `.`,
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().StringVar(&gradeQuestionKey, "question", "", "Question key (required)")
	gradeCmd.Flags().StringVar(&gradeAnswerPath, "answer", "", "Path to answer text file (default: stdin)")
	gradeCmd.Flags().StringVar(&gradeOrgID, "org", "", "Organization id for enrichment context")
	gradeCmd.Flags().BoolVar(&gradeVerbose, "verbose", false, "Print a formatted breakdown")
	_ = gradeCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(gradeCmd)
}

func runGrade(cmd *cobra.Command, _ []string) error {
	var answer []byte
	var err error
	if gradeAnswerPath != "" {
		answer, err = os.ReadFile(gradeAnswerPath)
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
	} else {
		answer, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read answer from stdin: %w", err)
		}
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	orgID := gradeOrgID
	if orgID == "" {
		orgID = settings.OrgID
	}

	var orgCtx *types.OrgContext
	if orgID != "" {
		dbURL := databaseURL(settings)
		if dbURL == "" {
			return fmt.Errorf("DATABASE_URL is required with --org")
		}
		db, err := store.Connect(cmd.Context(), dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		orgCtx, err = db.GetOrgContext(cmd.Context(), orgID)
		if err != nil {
			return err
		}
	}

	result, err := grading.GradeByQuestionKey(gradeQuestionKey, string(answer), orgCtx)
	if err != nil {
		return err
	}

	if gradeVerbose || settings.Verbose {
		observability.NewPrinter(os.Stdout).PrintGrade(result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
