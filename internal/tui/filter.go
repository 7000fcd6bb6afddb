package tui

import (
	"sort"
	"strings"

	"github.com/ppiankov/spectrabench/internal/models"
)

// filterState holds current active filters.
type filterState struct {
	SearchText string
}

// sortField enumerates columns that can be sorted.
type sortField int

const (
	sortByCount sortField = iota
	sortByRule
	sortByRepos
)

// sortFieldCount is the total number of sortable columns.
const sortFieldCount = 3

// applyFilters returns the rules matching all active filters.
func applyFilters(rules []models.RuleStat, f filterState) []models.RuleStat {
	result := make([]models.RuleStat, 0, len(rules))
	searchLower := strings.ToLower(f.SearchText)

	for _, rule := range rules {
		if searchLower != "" && !matchesSearch(rule, searchLower) {
			continue
		}
		result = append(result, rule)
	}
	return result
}

func matchesSearch(rule models.RuleStat, searchLower string) bool {
	if strings.Contains(strings.ToLower(rule.Rule), searchLower) {
		return true
	}
	for _, repo := range rule.RepoIDs {
		if strings.Contains(strings.ToLower(repo), searchLower) {
			return true
		}
	}
	return false
}

// sortRules sorts a slice of rule stats in place by the given field.
// Stable, so ties keep the summary's descending-count order.
func sortRules(rules []models.RuleStat, field sortField) {
	sort.SliceStable(rules, func(i, j int) bool {
		switch field {
		case sortByCount:
			return rules[i].Count > rules[j].Count
		case sortByRule:
			return rules[i].Rule < rules[j].Rule
		case sortByRepos:
			return rules[i].Repos > rules[j].Repos
		default:
			return false
		}
	})
}

// sortFieldName returns a human-readable name for the sort field.
func sortFieldName(f sortField) string {
	switch f {
	case sortByCount:
		return "findings"
	case sortByRule:
		return "rule"
	case sortByRepos:
		return "repos"
	default:
		return "unknown"
	}
}
