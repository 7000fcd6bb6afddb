package policy

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/spectrabench/internal/models"
	"gopkg.in/yaml.v3"
)

// Policy defines static ceilings a benchmark run is judged against.
type Policy struct {
	Version string `yaml:"version"`
	Rules   Rules  `yaml:"rules"`
}

// Rules contains all configurable policy rules. Nil means "no ceiling".
type Rules struct {
	MaxFindings *int     `yaml:"max_findings,omitempty"`
	MaxErrors   *int     `yaml:"max_errors,omitempty"`
	MaxWarnings *int     `yaml:"max_warnings,omitempty"`
	ForbidRules []string `yaml:"forbid_rules,omitempty"`
}

// Violation is a single policy failure.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result holds the outcome of a policy check.
type Result struct {
	Pass       bool        `json:"pass"`
	Violations []Violation `json:"violations"`
}

// LoadFromFile reads a policy file. A missing file is not an error; it
// means no policy applies.
func LoadFromFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read policy: %w", err)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}

	return &p, nil
}

// FindPolicyFile searches for a policy file in the current directory
// and parent directories up to the filesystem root.
func FindPolicyFile() string {
	names := []string{".spectrabench-policy.yaml", ".spectrabench-policy.yml"}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range names {
			path := dir + "/" + name
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := dir[:strings.LastIndex(dir, "/")]
		if parent == dir || parent == "" {
			break
		}
		dir = parent
	}

	return ""
}

// Evaluate checks a finalized summary against the policy. A count equal to
// its ceiling passes; only exceeding it fails.
func (p *Policy) Evaluate(summary *models.Summary) Result {
	var violations []Violation

	if p.Rules.MaxFindings != nil && summary.TotalFindings > *p.Rules.MaxFindings {
		violations = append(violations, Violation{
			Rule: "max_findings",
			Message: fmt.Sprintf("total findings %d exceeds ceiling %d",
				summary.TotalFindings, *p.Rules.MaxFindings),
		})
	}

	if p.Rules.MaxErrors != nil && summary.SeverityCounts[models.SeverityError] > *p.Rules.MaxErrors {
		violations = append(violations, Violation{
			Rule: "max_errors",
			Message: fmt.Sprintf("error findings %d exceeds ceiling %d",
				summary.SeverityCounts[models.SeverityError], *p.Rules.MaxErrors),
		})
	}

	if p.Rules.MaxWarnings != nil && summary.SeverityCounts[models.SeverityWarning] > *p.Rules.MaxWarnings {
		violations = append(violations, Violation{
			Rule: "max_warnings",
			Message: fmt.Sprintf("warning findings %d exceeds ceiling %d",
				summary.SeverityCounts[models.SeverityWarning], *p.Rules.MaxWarnings),
		})
	}

	for _, forbidden := range p.Rules.ForbidRules {
		for _, rule := range summary.Rules {
			if rule.Rule == forbidden {
				violations = append(violations, Violation{
					Rule: "forbid_rules",
					Message: fmt.Sprintf("forbidden rule %q has %d finding(s) across %d repo(s)",
						rule.Rule, rule.Count, rule.Repos),
				})
			}
		}
	}

	return Result{
		Pass:       len(violations) == 0,
		Violations: violations,
	}
}
