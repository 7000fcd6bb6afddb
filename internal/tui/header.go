package tui

import (
	"fmt"
	"strings"

	"github.com/ppiankov/spectrabench/internal/models"
)

// headerHeight is the number of terminal lines the header occupies.
const headerHeight = 5

// renderHeader produces the header string from the run summary.
func renderHeader(summary *models.Summary, width int) string {
	var b strings.Builder

	// Line 1: title and scope
	b.WriteString(fmt.Sprintf("spectralint benchmark  %d repos scanned  %d findings",
		summary.TotalRepos, summary.TotalFindings))
	b.WriteString("\n")

	// Line 2: coverage
	b.WriteString(fmt.Sprintf("With findings: %d (%d%%)  With error/warning: %d (%d%%)",
		summary.ReposWithFindings, summary.PctWithFindings,
		summary.ReposWithErrWarn, summary.PctWithErrWarn))
	b.WriteString("\n")

	// Line 3: severity breakdown
	sevParts := make([]string, 0, len(models.FixedSeverities))
	for _, sev := range models.FixedSeverities {
		if count := summary.SeverityCounts[sev]; count > 0 {
			label := fmt.Sprintf("%s:%d", sev, count)
			sevParts = append(sevParts, severityStyle(sev).Render(label))
		}
	}
	if len(sevParts) > 0 {
		b.WriteString(strings.Join(sevParts, "  "))
	} else {
		b.WriteString("no findings")
	}

	return styleHeader.Width(width).Render(b.String())
}
