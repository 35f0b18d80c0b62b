// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/applicant-scorer/internal/types"
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

// PrintEvaluation outputs a human-readable summary of an evaluation result.
func (p *Printer) PrintEvaluation(result *types.EvaluationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d%% (%s)\n", result.OverallPercent, result.Label))
	if result.Disqualified {
		sb.WriteString(fmt.Sprintf("DISQUALIFIED by rule %s\n", result.DisqualifierID))
	}
	sb.WriteString("\n")

	for _, cat := range result.PerCategory {
		sb.WriteString(fmt.Sprintf("%-22s %3d/%3d", cat.Category, cat.CappedPoints, cat.MaxPoints))
		if cat.RawPoints > cat.CappedPoints {
			sb.WriteString(fmt.Sprintf(" (raw %d)", cat.RawPoints))
		}
		sb.WriteString("\n")
		for i, id := range cat.MatchedRuleIDs {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cat.MatchedRuleIDs)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  + %s\n", id))
		}
	}

	p.printBox("Competitiveness Evaluation", strings.TrimRight(sb.String(), "\n"))
}

// PrintGrade outputs a human-readable summary of a free-text grading result.
func (p *Printer) PrintGrade(result *types.FreeTextResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100 (%s)\n", result.Score, result.Label))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", result.Detected.WordCount))
	sb.WriteString(fmt.Sprintf("Signals:  %d substance, %d values\n",
		result.Detected.SubstanceHits, result.Detected.ValueHits))
	if result.Detected.BonusApplied {
		sb.WriteString("Bonus:    enrichment applied\n")
	}

	if len(result.Notes) > 0 {
		sb.WriteString("\nNotes:\n")
		for _, note := range result.Notes {
			sb.WriteString("  - " + note + "\n")
		}
	}
	if len(result.Tips) > 0 {
		sb.WriteString("\nTips:\n")
		for i, tip := range result.Tips {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Tips)-maxItemsToShow))
				break
			}
			sb.WriteString("  - " + tip + "\n")
		}
	}

	p.printBox("Interview Answer Grade", strings.TrimRight(sb.String(), "\n"))
}
