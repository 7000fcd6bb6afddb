package tui

import (
	"fmt"
	"strings"

	"github.com/ppiankov/spectrabench/internal/models"
)

// detailHeight is the fixed number of lines for the detail panel.
const detailHeight = 5

// maxDetailRepos caps how many repo names the panel lists before eliding.
const maxDetailRepos = 8

// renderDetail produces the detail view for a selected rule.
func renderDetail(rule *models.RuleStat, width int) string {
	if rule == nil {
		return styleDetailPanel.Width(width).Render("No rule selected")
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %d finding(s) in %d repo(s)\n", rule.Rule, rule.Count, rule.Repos))

	repos := rule.RepoIDs
	elided := 0
	if len(repos) > maxDetailRepos {
		elided = len(repos) - maxDetailRepos
		repos = repos[:maxDetailRepos]
	}

	b.WriteString("Repos: ")
	b.WriteString(strings.Join(repos, ", "))
	if elided > 0 {
		b.WriteString(fmt.Sprintf(" (+%d more)", elided))
	}

	return styleDetailPanel.Width(width).Render(b.String())
}
