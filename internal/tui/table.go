package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/spectrabench/internal/models"
)

var tableColumns = []table.Column{
	{Title: "Rule", Width: 34},
	{Title: "Findings", Width: 10},
	{Title: "Repos", Width: 7},
	{Title: "Share", Width: 7},
}

// buildRows converts rule stats to table rows. Share is the rule's fraction
// of all findings, truncated the same way the coverage percentages are.
func buildRows(rules []models.RuleStat, totalFindings int) []table.Row {
	rows := make([]table.Row, 0, len(rules))
	for _, rule := range rules {
		share := 0
		if totalFindings > 0 {
			share = rule.Count * 100 / totalFindings
		}
		rows = append(rows, table.Row{
			truncate(rule.Rule, tableColumns[0].Width),
			fmt.Sprintf("%d", rule.Count),
			fmt.Sprintf("%d", rule.Repos),
			fmt.Sprintf("%d%%", share),
		})
	}
	return rows
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// newTable creates a bubbles table with standard columns and styling.
func newTable(rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)

	return t
}
