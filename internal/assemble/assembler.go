// File path: internal/assemble/assembler.go

// Package assemble fills the per-type document template with generated
// fragments and the caller's identity fields, producing the flat text body
// handed to the translator and the layout classifier.
package assemble

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/prompts"

	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/document"
	"github.com/nyayasetu/nyayasetu/internal/generate"
	"github.com/nyayasetu/nyayasetu/internal/language"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateFiles = map[document.Type]string{
	document.TypePIL:       "templates/pil.tmpl",
	document.TypeRTI:       "templates/rti.tmpl",
	document.TypeComplaint: "templates/complaint.tmpl",
}

// The PIL form of the original service was purpose-built for environmental
// petitions; the purpose lines are fixed while facts, grounds, and prayers
// are generated per issue.
const (
	pilPurpose          = "environmental protection and public health"
	pilIssueDescription = "environmental pollution and public health hazards"
)

type Assembler struct {
	templates map[document.Type]prompts.PromptTemplate
}

// New loads the embedded document templates.
func New() (*Assembler, error) {
	templates := make(map[document.Type]prompts.PromptTemplate, len(templateFiles))
	for typ, file := range templateFiles {
		raw, err := templateFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("load template %s: %w", file, err)
		}
		templates[typ] = prompts.NewPromptTemplate(string(raw), nil)
	}
	return &Assembler{templates: templates}, nil
}

// Assemble fills the template registered for the document type. A type
// without a template fails with a template-missing error; a template field
// with no supplied value fails with a missing-field error.
func (a *Assembler) Assemble(typ document.Type, frags document.Fragments, req document.Request, profile language.Profile, now time.Time) (string, error) {
	tpl, ok := a.templates[typ]
	if !ok {
		return "", document.Fail(document.KindTemplateMissing, "assemble", fmt.Errorf("no template registered for %q", typ))
	}
	data := identityData(typ, req, now)
	for name, value := range frags {
		data[name] = value
	}
	switch typ {
	case document.TypePIL:
		city, _ := data["city"].(string)
		state, _ := data["state"].(string)
		data["respondents"] = generate.Respondents(city, state)
		data["petition_purpose"] = pilPurpose
		data["issue_description"] = pilIssueDescription
		data["header_facts"] = profile.Headers.Facts
		data["header_legal"] = profile.Headers.LegalBasis
		data["header_prayers"] = profile.Headers.Prayers
		data["header_verification"] = profile.Headers.Verification
	}
	content, err := tpl.Format(data)
	if err != nil {
		return "", document.Fail(document.KindMissingField, "assemble", err)
	}
	common.Logger().Debug("assemble: document body filled", "type", typ, "length", len(content))
	return content, nil
}

func identityData(typ document.Type, req document.Request, now time.Time) map[string]any {
	city, state := SplitLocation(typ, req.Location)
	contact := strings.TrimSpace(req.Contact)
	if contact == "" {
		contact = "[Contact Number]"
	}
	data := map[string]any{
		"user_name": req.Name,
		"city":      city,
		"state":     state,
		"date":      now.Format("02 January, 2006"),
		"year":      now.Year(),
		"month":     now.Format("January"),
	}
	if typ == document.TypePIL {
		data["user_address"] = city
		data["contact_details"] = fmt.Sprintf("Contact: %s\nAddress: %s", contact, city)
	} else {
		data["user_address"] = fmt.Sprintf("%s, %s", city, state)
		data["contact_details"] = fmt.Sprintf("Contact: %s", contact)
	}
	return data
}

// SplitLocation parses the caller's "City, State" string. The first segment
// is always the city; a bare string doubles as both city and state. The
// state segment differs per document type (PIL reads the second segment,
// the others read the last) and the difference is kept deliberately, since
// it decides which administrative region lands in respondent and authority
// lists.
func SplitLocation(typ document.Type, location string) (city, state string) {
	parts := strings.Split(location, ",")
	city = strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return city, strings.TrimSpace(location)
	}
	if typ == document.TypePIL {
		return city, strings.TrimSpace(parts[1])
	}
	return city, strings.TrimSpace(parts[len(parts)-1])
}
