package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/spectrabench/internal/models"
)

func intp(n int) *int { return &n }

func benchSummary() *models.Summary {
	return &models.Summary{
		TotalRepos:     4,
		TotalFindings:  10,
		SeverityCounts: map[string]int{"error": 3, "warning": 5, "info": 2},
		Rules: []models.RuleStat{
			{Rule: "no-docstring", Count: 6, Repos: 3},
			{Rule: "credential-exposure", Count: 1, Repos: 1},
			{Rule: "unused-import", Count: 3, Repos: 2},
		},
	}
}

func TestEvaluateNoCeilings(t *testing.T) {
	p := &Policy{Version: "1"}
	result := p.Evaluate(benchSummary())

	if !result.Pass {
		t.Errorf("empty policy should pass, got violations: %v", result.Violations)
	}
}

func TestEvaluateCeilings(t *testing.T) {
	tests := []struct {
		name     string
		rules    Rules
		wantPass bool
		wantRule string
	}{
		{"findings at ceiling passes", Rules{MaxFindings: intp(10)}, true, ""},
		{"findings above ceiling fails", Rules{MaxFindings: intp(9)}, false, "max_findings"},
		{"errors at ceiling passes", Rules{MaxErrors: intp(3)}, true, ""},
		{"errors above ceiling fails", Rules{MaxErrors: intp(2)}, false, "max_errors"},
		{"warnings at ceiling passes", Rules{MaxWarnings: intp(5)}, true, ""},
		{"warnings above ceiling fails", Rules{MaxWarnings: intp(4)}, false, "max_warnings"},
		{"zero ceiling means any finding fails", Rules{MaxFindings: intp(0)}, false, "max_findings"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := &Policy{Rules: tt.rules}
			result := p.Evaluate(benchSummary())

			if result.Pass != tt.wantPass {
				t.Fatalf("Pass = %v, want %v (violations: %v)",
					result.Pass, tt.wantPass, result.Violations)
			}
			if !tt.wantPass {
				if len(result.Violations) != 1 {
					t.Fatalf("expected 1 violation, got %d", len(result.Violations))
				}
				if result.Violations[0].Rule != tt.wantRule {
					t.Errorf("violation rule = %q, want %q", result.Violations[0].Rule, tt.wantRule)
				}
			}
		})
	}
}

func TestEvaluateForbidRules(t *testing.T) {
	p := &Policy{Rules: Rules{ForbidRules: []string{"credential-exposure", "not-present"}}}
	result := p.Evaluate(benchSummary())

	if result.Pass {
		t.Fatal("expected failure for forbidden rule present in summary")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(result.Violations))
	}
	if result.Violations[0].Rule != "forbid_rules" {
		t.Errorf("violation rule = %q, want forbid_rules", result.Violations[0].Rule)
	}
}

func TestEvaluateMultipleViolations(t *testing.T) {
	p := &Policy{Rules: Rules{
		MaxFindings: intp(1),
		MaxErrors:   intp(0),
		ForbidRules: []string{"no-docstring"},
	}}
	result := p.Evaluate(benchSummary())

	if result.Pass {
		t.Fatal("expected failure")
	}
	if len(result.Violations) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(result.Violations), result.Violations)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	p, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if p != nil {
		t.Errorf("expected nil policy for missing file, got %+v", p)
	}
}

func TestLoadFromFileValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `version: "1"
rules:
  max_findings: 25
  max_errors: 0
  forbid_rules:
    - credential-exposure
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	p, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected policy, got nil")
	}
	if p.Rules.MaxFindings == nil || *p.Rules.MaxFindings != 25 {
		t.Errorf("MaxFindings = %v, want 25", p.Rules.MaxFindings)
	}
	if p.Rules.MaxErrors == nil || *p.Rules.MaxErrors != 0 {
		t.Errorf("MaxErrors = %v, want 0", p.Rules.MaxErrors)
	}
	if p.Rules.MaxWarnings != nil {
		t.Errorf("MaxWarnings = %v, want nil (no ceiling)", p.Rules.MaxWarnings)
	}
	if len(p.Rules.ForbidRules) != 1 || p.Rules.ForbidRules[0] != "credential-exposure" {
		t.Errorf("ForbidRules = %v, want [credential-exposure]", p.Rules.ForbidRules)
	}
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("rules: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for malformed policy, got nil")
	}
}

func TestFindPolicyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".spectrabench-policy.yaml")
	if err := os.WriteFile(path, []byte("version: \"1\"\n"), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	sub := filepath.Join(dir, "nested", "deeper")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(sub)

	found := FindPolicyFile()
	if found == "" {
		t.Fatal("expected to find policy file in ancestor directory")
	}
	if filepath.Base(found) != ".spectrabench-policy.yaml" {
		t.Errorf("found %q, want .spectrabench-policy.yaml", found)
	}
}
