// File path: internal/layout/classify.go

// Package layout turns an assembled document body into the ordered styled
// block sequence consumed by the renderer. Classification is line-local:
// each non-empty line is judged on its own text against an ordered rule
// list, never against surrounding lines.
package layout

import (
	"regexp"
	"strings"

	"github.com/nyayasetu/nyayasetu/internal/language"
)

// Role is the paragraph role a classified line plays in the document.
type Role int

const (
	// RoleSpacer is a blank vertical gap, emitted before headers and
	// subject/address lines. It carries no text.
	RoleSpacer Role = iota
	// RoleHeader is the top-level title style. The classifier never emits
	// it; it exists for callers that prepend their own title block.
	RoleHeader
	RoleSubheader
	RoleBodyJustified
	RoleBodyCentered
)

// Block is one unit of renderer input. Sequence order is document order
// and must be preserved.
type Block struct {
	Role Role
	Text string
}

var numberedClause = regexp.MustCompile(`^\d+\.`)

// rule pairs a line predicate with the role to emit. Rules are evaluated
// top-down, first match wins. The order is load-bearing: section headers
// carry trailing colons and localized words that could also satisfy the
// subject or place/date prefixes further down, so they are tested first.
type rule struct {
	name   string
	match  func(p language.Profile, line string) bool
	role   Role
	spacer bool
}

var rules = []rule{
	{name: "section-header", match: matchSectionHeader, role: RoleSubheader, spacer: true},
	{name: "salutation", match: matchPrefix(func(t language.Tokens) string { return t.Salutation }), role: RoleBodyJustified},
	{name: "subject", match: matchPrefix(func(t language.Tokens) string { return t.Subject }), role: RoleBodyJustified, spacer: true},
	{name: "respectful-address", match: matchPrefix(func(t language.Tokens) string { return t.Respected }), role: RoleBodyJustified, spacer: true},
	{name: "numbered-clause", match: matchNumbered, role: RoleBodyJustified},
	{name: "role-label", match: matchRoleLabel, role: RoleBodyCentered},
	{name: "place-date", match: matchPlaceDate, role: RoleBodyJustified},
}

// Classify splits text into lines and emits one styled block per non-empty
// line, preceded by a spacer where the matched rule calls for one. Blank
// lines produce nothing.
func Classify(text string, profile language.Profile) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, classifyLine(profile, line)...)
	}
	return blocks
}

func classifyLine(profile language.Profile, line string) []Block {
	for _, r := range rules {
		if !r.match(profile, line) {
			continue
		}
		if r.spacer {
			return []Block{{Role: RoleSpacer}, {Role: r.role, Text: line}}
		}
		return []Block{{Role: r.role, Text: line}}
	}
	return []Block{{Role: RoleBodyJustified, Text: line}}
}

func matchSectionHeader(p language.Profile, line string) bool {
	for _, header := range []string{
		p.Headers.Facts,
		p.Headers.LegalBasis,
		p.Headers.Prayers,
		p.Headers.Verification,
	} {
		if header != "" && strings.HasPrefix(line, header) {
			return true
		}
	}
	return false
}

func matchPrefix(token func(language.Tokens) string) func(language.Profile, string) bool {
	return func(p language.Profile, line string) bool {
		t := token(p.Tokens)
		return t != "" && strings.HasPrefix(line, t)
	}
}

func matchNumbered(_ language.Profile, line string) bool {
	return numberedClause.MatchString(line)
}

func matchRoleLabel(p language.Profile, line string) bool {
	return line == p.Tokens.Petitioner || line == p.Tokens.Respondents
}

func matchPlaceDate(p language.Profile, line string) bool {
	return (p.Tokens.Place != "" && strings.HasPrefix(line, p.Tokens.Place)) ||
		(p.Tokens.Date != "" && strings.HasPrefix(line, p.Tokens.Date))
}
