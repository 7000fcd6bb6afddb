package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/spectrabench/internal/models"
)

// TextReporter generates the human-readable benchmark rollup.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{
		writer: writer,
	}
}

// Generate renders the summary in the fixed benchmark layout. The layout is
// deterministic: the same summary always produces byte-identical output.
func (r *TextReporter) Generate(summary *models.Summary) error {
	banner := strings.Repeat("=", 60)

	r.printf("\n%s\n", banner)
	r.printf("  spectralint benchmark — %d repos scanned\n", summary.TotalRepos)
	r.printf("%s\n", banner)
	r.printf("  Total findings:           %d\n", summary.TotalFindings)
	r.printf("  Repos with any finding:   %d (%d%%)\n",
		summary.ReposWithFindings, summary.PctWithFindings)
	r.printf("  Repos with error/warning: %d (%d%%)\n",
		summary.ReposWithErrWarn, summary.PctWithErrWarn)
	r.printf("\n")

	// Fixed three-row breakdown. Severities outside the fixed set stay in
	// the totals but get no row of their own.
	r.printf("  Severity breakdown:\n")
	for _, sev := range models.FixedSeverities {
		r.printf("    %8s: %d\n", sev, summary.SeverityCounts[sev])
	}
	r.printf("\n")

	r.printf("  Findings by rule:\n")
	for _, rule := range summary.Rules {
		r.printf("    %-32s %4d  (%d repos)\n", rule.Rule, rule.Count, rule.Repos)
	}

	r.printf("\n%s\n", banner)

	return nil
}

// printf is a helper to write formatted output.
func (r *TextReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}
