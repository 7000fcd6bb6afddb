package models

// Severity labels emitted by spectralint. Result files may carry labels
// outside this set; they are counted but never get their own breakdown row.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// FixedSeverities is the display order of the severity breakdown.
var FixedSeverities = []string{SeverityError, SeverityWarning, SeverityInfo}

// Diagnostic is a single finding from a spectralint scan. Both fields are
// required; an empty value signals a broken result file, not a clean repo.
type Diagnostic struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
}

// ResultDocument is the parsed content of one repository's result file.
// Repo is the file's base name with the .json suffix stripped.
type ResultDocument struct {
	Repo        string
	Diagnostics []Diagnostic
}

// RuleStat is one row of the findings-by-rule breakdown.
type RuleStat struct {
	Rule    string   `json:"rule"`
	Count   int      `json:"count"`
	Repos   int      `json:"repos"`
	RepoIDs []string `json:"repo_ids"`
}

// Summary is the finalized aggregate over one benchmark run. Rules are
// ordered by descending count, ties broken by first-seen order, so two runs
// over the same directory produce identical output.
type Summary struct {
	TotalRepos        int            `json:"total_repos"`
	TotalFindings     int            `json:"total_findings"`
	ReposWithFindings int            `json:"repos_with_findings"`
	ReposWithErrWarn  int            `json:"repos_with_errors_or_warnings"`
	PctWithFindings   int            `json:"pct_with_findings"`
	PctWithErrWarn    int            `json:"pct_with_errors_or_warnings"`
	SeverityCounts    map[string]int `json:"severity_counts"`
	Rules             []RuleStat     `json:"rules"`
}
