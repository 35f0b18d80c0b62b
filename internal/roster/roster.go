// Package roster parses police-service leadership pages into org context data.
package roster

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/applicant-scorer/internal/types"
)

// Selectors tried in order for the leadership listing. Most service sites
// publish the command roster as headings or profile cards.
var memberSelectors = []string{
	".leadership-profile",
	".profile-card",
	".bio-card",
	".team-member",
	"article",
}

// rankTitles anchor the role extraction; the name is whatever proper-noun
// text follows the rank on the same card.
var rankTitles = []string{
	"Chief of Police",
	"Chief",
	"Deputy Chief",
	"Chief Administrative Officer",
	"Staff Superintendent",
	"Superintendent",
	"Inspector",
}

var namePattern = regexp.MustCompile(`[A-Z][a-zA-Z'.-]+(?:\s+[A-Z][a-zA-Z'.-]+)+`)

// ParseLeadership extracts leadership members from a roster page. It walks
// the candidate selectors until one yields members; pages with no
// recognizable structure fall back to scanning headings.
func ParseLeadership(html string) ([]types.LeadershipMember, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, script, style, noscript").Remove()

	for _, selector := range memberSelectors {
		members := extractMembers(doc.Find(selector))
		if len(members) > 0 {
			return members, nil
		}
	}

	// Fallback: headings often carry "Chief Jane Smith" style lines.
	members := extractMembers(doc.Find("h1, h2, h3, h4"))
	if len(members) == 0 {
		return nil, fmt.Errorf("no leadership members found in page")
	}
	return members, nil
}

// extractMembers pulls (role, name) pairs out of a selection.
func extractMembers(selection *goquery.Selection) []types.LeadershipMember {
	var members []types.LeadershipMember
	seen := make(map[string]bool)

	selection.Each(func(_ int, node *goquery.Selection) {
		text := strings.TrimSpace(node.Text())
		if text == "" || len(text) > 500 {
			return
		}

		role := matchRank(text)
		if role == "" {
			return
		}

		name := extractName(text, role)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true

		members = append(members, types.LeadershipMember{
			Name:    name,
			Role:    role,
			Aliases: []string{role + " " + surname(name)},
		})
	})
	return members
}

// matchRank returns the longest rank title present in the text, so "Deputy
// Chief" wins over "Chief".
func matchRank(text string) string {
	best := ""
	for _, rank := range rankTitles {
		if strings.Contains(text, rank) && len(rank) > len(best) {
			best = rank
		}
	}
	return best
}

// extractName finds the first proper-noun sequence after the rank title,
// falling back to the first one anywhere in the text.
func extractName(text, role string) string {
	after := text
	if idx := strings.Index(text, role); idx >= 0 {
		after = text[idx+len(role):]
	}

	if name := namePattern.FindString(after); name != "" {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(namePattern.FindString(text))
}

func surname(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[len(fields)-1]
}
