// File path: internal/language/registry.go

// Package language holds the per-language document configuration: the font
// used for rendering, the localized section headers, and the localized
// tokens the layout classifier matches on. Profiles are immutable after
// registry construction.
package language

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nyayasetu/nyayasetu/internal/common"
)

// DefaultCode is the fallback language. Resolve never fails; unknown codes
// silently resolve to this profile.
const DefaultCode = "en"

// Headers holds the localized section header strings of a document body.
type Headers struct {
	Facts        string `yaml:"facts"`
	LegalBasis   string `yaml:"legal_basis"`
	Prayers      string `yaml:"prayers"`
	Verification string `yaml:"verification"`
}

// Tokens holds the localized line prefixes and labels the classifier keys
// on beyond the section headers.
type Tokens struct {
	Salutation  string `yaml:"salutation"`
	Subject     string `yaml:"subject"`
	Respected   string `yaml:"respected"`
	Place       string `yaml:"place"`
	Date        string `yaml:"date"`
	Petitioner  string `yaml:"petitioner"`
	Respondents string `yaml:"respondents"`
}

// Profile is the full language configuration resolved per invocation.
type Profile struct {
	Code        string  `yaml:"-"`
	Font        string  `yaml:"font"`
	DisplayName string  `yaml:"display_name"`
	Headers     Headers `yaml:"headers"`
	Tokens      Tokens  `yaml:"tokens"`
}

var builtins = map[string]Profile{
	"en": {
		Code:        "en",
		Font:        "Times-Roman",
		DisplayName: "English",
		Headers: Headers{
			Facts:        "FACTS OF THE CASE:",
			LegalBasis:   "LEGAL BASIS:",
			Prayers:      "PRAYERS:",
			Verification: "VERIFICATION:",
		},
		Tokens: Tokens{
			Salutation:  "To,",
			Subject:     "Subject:",
			Respected:   "Respected",
			Place:       "PLACE:",
			Date:        "DATE:",
			Petitioner:  "Petitioner",
			Respondents: "Respondents",
		},
	},
	"hi": {
		Code:        "hi",
		Font:        "Times-Roman",
		DisplayName: "Hindi",
		Headers: Headers{
			Facts:        "मामले के तथ्य:",
			LegalBasis:   "कानूनी आधार:",
			Prayers:      "प्रार्थनाएँ:",
			Verification: "सत्यापन:",
		},
		Tokens: Tokens{
			Salutation:  "प्रति,",
			Subject:     "विषय:",
			Respected:   "माननीय",
			Place:       "स्थान:",
			Date:        "दिनांक:",
			Petitioner:  "याचिकाकर्ता",
			Respondents: "प्रतिवादी",
		},
	},
	"kn": {
		Code:        "kn",
		Font:        "Times-Roman",
		DisplayName: "Kannada",
		Headers: Headers{
			Facts:        "ಪ್ರಕರಣದ ಅಂಶಗಳು:",
			LegalBasis:   "ಕಾನೂನು ಆಧಾರ:",
			Prayers:      "ಪ್ರಾರ್ಥನೆಗಳು:",
			Verification: "ಪರಿಶೀಲನೆ:",
		},
		Tokens: Tokens{
			Salutation:  "ಗೆ,",
			Subject:     "ವಿಷಯ:",
			Respected:   "ಮಾನ್ಯ",
			Place:       "ಸ್ಥಳ:",
			Date:        "ದಿನಾಂಕ:",
			Petitioner:  "ಅರ್ಜಿದಾರ",
			Respondents: "ಪ್ರತಿವಾದಿಗಳು",
		},
	},
}

// Registry resolves language codes to profiles. The builtin table can be
// extended, never shrunk, by a YAML overlay file.
type Registry struct {
	profiles map[string]Profile
}

func NewRegistry() *Registry {
	profiles := make(map[string]Profile, len(builtins))
	for code, p := range builtins {
		profiles[code] = p
	}
	return &Registry{profiles: profiles}
}

type overlayFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// LoadOverlay merges additional profiles from a YAML file over the builtin
// table. Empty fields of an overlay profile inherit from the default
// profile, so a minimal entry only needs the strings it localizes. The
// default profile itself cannot be removed.
func (r *Registry) LoadOverlay(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read language overlay: %w", err)
	}
	var overlay overlayFile
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return fmt.Errorf("parse language overlay: %w", err)
	}
	base := r.profiles[DefaultCode]
	for code, p := range overlay.Profiles {
		if code == "" {
			continue
		}
		p.Code = code
		fillProfile(&p, base)
		r.profiles[code] = p
	}
	common.Logger().Info("language: overlay loaded", "path", path, "profiles", len(overlay.Profiles))
	return nil
}

// Resolve returns the profile for code, or the default profile when the
// code is unknown. It never fails.
func (r *Registry) Resolve(code string) Profile {
	if p, ok := r.profiles[code]; ok {
		return p
	}
	return r.profiles[DefaultCode]
}

// Codes lists every registered language code.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.profiles))
	for code := range r.profiles {
		codes = append(codes, code)
	}
	return codes
}

// DisplayName returns the human-readable name for a code, or "" when the
// code is unknown. Unlike Resolve this does not fall back: the translator
// treats a missing name as its best-effort case.
func (r *Registry) DisplayName(code string) string {
	if p, ok := r.profiles[code]; ok {
		return p.DisplayName
	}
	return ""
}

func fillProfile(p *Profile, base Profile) {
	if p.Font == "" {
		p.Font = base.Font
	}
	if p.DisplayName == "" {
		p.DisplayName = p.Code
	}
	if p.Headers.Facts == "" {
		p.Headers.Facts = base.Headers.Facts
	}
	if p.Headers.LegalBasis == "" {
		p.Headers.LegalBasis = base.Headers.LegalBasis
	}
	if p.Headers.Prayers == "" {
		p.Headers.Prayers = base.Headers.Prayers
	}
	if p.Headers.Verification == "" {
		p.Headers.Verification = base.Headers.Verification
	}
	if p.Tokens.Salutation == "" {
		p.Tokens.Salutation = base.Tokens.Salutation
	}
	if p.Tokens.Subject == "" {
		p.Tokens.Subject = base.Tokens.Subject
	}
	if p.Tokens.Respected == "" {
		p.Tokens.Respected = base.Tokens.Respected
	}
	if p.Tokens.Place == "" {
		p.Tokens.Place = base.Tokens.Place
	}
	if p.Tokens.Date == "" {
		p.Tokens.Date = base.Tokens.Date
	}
	if p.Tokens.Petitioner == "" {
		p.Tokens.Petitioner = base.Tokens.Petitioner
	}
	if p.Tokens.Respondents == "" {
		p.Tokens.Respondents = base.Tokens.Respondents
	}
}
