// File path: internal/generate/cleanup.go
package generate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emphasisRe = regexp.MustCompile(`\*\*|\*`)
	numberedRe = regexp.MustCompile(`^\d+\.\s*`)
)

// cleanLines trims the response, splits it into non-empty lines, and
// strips markdown emphasis markers. The model is asked not to emit
// markdown but is not trusted to comply.
func cleanLines(response string) []string {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, emphasisRe.ReplaceAllString(line, ""))
	}
	return lines
}

// cleanBlock is cleanLines rejoined into one paragraph-per-line block.
func cleanBlock(response string) string {
	return strings.Join(cleanLines(response), "\n")
}

// renumber strips whatever leading "N." numbering the model produced and
// reapplies sequential numbering, guaranteeing a contiguous 1..N list.
// Applying it to an already-correct list is a no-op apart from the
// renumbering itself.
func renumber(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		body := strings.TrimSpace(numberedRe.ReplaceAllString(line, ""))
		out = append(out, fmt.Sprintf("%d. %s", i+1, body))
	}
	return out
}
