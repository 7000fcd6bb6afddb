package aggregator

import (
	"fmt"
	"sort"

	"github.com/ppiankov/spectrabench/internal/models"
)

// InvalidDiagnosticError signals a diagnostic missing a required field.
// A required field absent is an upstream contract violation, not a
// recoverable empty case, so the whole run aborts.
type InvalidDiagnosticError struct {
	Repo  string
	Index int
	Field string
}

func (e *InvalidDiagnosticError) Error() string {
	return fmt.Sprintf("repo %s: diagnostic %d missing required field %q", e.Repo, e.Index, e.Field)
}

// Aggregator folds result documents into running summary state. One
// instance per run; not safe for concurrent use, and it does not need to
// be: the fold is strictly sequential.
type Aggregator struct {
	totalRepos     int
	ruleCounts     map[string]int
	ruleOrder      []string
	severityCounts map[string]int

	ruleRepos         map[string]map[string]struct{}
	reposWithFindings map[string]struct{}
	reposWithErrWarn  map[string]struct{}
}

// New creates an empty aggregator.
func New() *Aggregator {
	return &Aggregator{
		ruleCounts:        make(map[string]int),
		severityCounts:    make(map[string]int),
		ruleRepos:         make(map[string]map[string]struct{}),
		reposWithFindings: make(map[string]struct{}),
		reposWithErrWarn:  make(map[string]struct{}),
	}
}

// Fold merges one result document into the running state. The repo counts
// toward the total even when it produced no diagnostics.
func (a *Aggregator) Fold(doc models.ResultDocument) error {
	a.totalRepos++

	for i, d := range doc.Diagnostics {
		if d.Category == "" {
			return &InvalidDiagnosticError{Repo: doc.Repo, Index: i, Field: "category"}
		}
		if d.Severity == "" {
			return &InvalidDiagnosticError{Repo: doc.Repo, Index: i, Field: "severity"}
		}

		if _, seen := a.ruleCounts[d.Category]; !seen {
			a.ruleOrder = append(a.ruleOrder, d.Category)
		}
		a.ruleCounts[d.Category]++
		a.severityCounts[d.Severity]++

		repos := a.ruleRepos[d.Category]
		if repos == nil {
			repos = make(map[string]struct{})
			a.ruleRepos[d.Category] = repos
		}
		repos[doc.Repo] = struct{}{}

		a.reposWithFindings[doc.Repo] = struct{}{}
		if d.Severity == models.SeverityError || d.Severity == models.SeverityWarning {
			a.reposWithErrWarn[doc.Repo] = struct{}{}
		}
	}

	return nil
}

// Summary finalizes the state into an immutable summary. Rules are ordered
// by descending count; ties keep first-seen order, so the ordering is
// stable across runs over the same directory.
func (a *Aggregator) Summary() *models.Summary {
	rules := make([]models.RuleStat, 0, len(a.ruleOrder))
	for _, rule := range a.ruleOrder {
		repoIDs := make([]string, 0, len(a.ruleRepos[rule]))
		for repo := range a.ruleRepos[rule] {
			repoIDs = append(repoIDs, repo)
		}
		sort.Strings(repoIDs)

		rules = append(rules, models.RuleStat{
			Rule:    rule,
			Count:   a.ruleCounts[rule],
			Repos:   len(repoIDs),
			RepoIDs: repoIDs,
		})
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Count > rules[j].Count
	})

	totalFindings := 0
	for _, count := range a.ruleCounts {
		totalFindings += count
	}

	severityCounts := make(map[string]int, len(a.severityCounts))
	for sev, count := range a.severityCounts {
		severityCounts[sev] = count
	}

	return &models.Summary{
		TotalRepos:        a.totalRepos,
		TotalFindings:     totalFindings,
		ReposWithFindings: len(a.reposWithFindings),
		ReposWithErrWarn:  len(a.reposWithErrWarn),
		PctWithFindings:   percent(len(a.reposWithFindings), a.totalRepos),
		PctWithErrWarn:    percent(len(a.reposWithErrWarn), a.totalRepos),
		SeverityCounts:    severityCounts,
		Rules:             rules,
	}
}

// percent is truncating integer division: 1 of 3 is 33, never 34. A zero
// total yields 0 rather than a division panic.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}
