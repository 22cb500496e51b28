// File path: internal/layout/render.go
package layout

import (
	"github.com/go-pdf/fpdf"

	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/language"
)

// Renderer writes an ordered block sequence to a paginated artifact.
type Renderer interface {
	Render(blocks []Block, profile language.Profile, path string) error
}

// Page geometry: standard letter, one-inch margins all around.
const (
	pageMargin = 72.0
	spacerGap  = 12.0
)

type blockStyle struct {
	fontStyle string
	size      float64
	leading   float64
	before    float64
	after     float64
	align     string
}

var blockStyles = map[Role]blockStyle{
	RoleHeader:        {fontStyle: "B", size: 14, leading: 16, before: 12, after: 12, align: "C"},
	RoleSubheader:     {fontStyle: "B", size: 12, leading: 14, before: 12, after: 6, align: "J"},
	RoleBodyJustified: {fontStyle: "", size: 12, leading: 14, before: 6, after: 6, align: "J"},
	RoleBodyCentered:  {fontStyle: "", size: 12, leading: 14, before: 6, after: 6, align: "C"},
}

// fontFamilies maps profile font identifiers onto the PDF core families.
// Unknown identifiers fall back to Times, matching the default profile.
var fontFamilies = map[string]string{
	"Times-Roman": "Times",
	"Times":       "Times",
	"Helvetica":   "Helvetica",
	"Courier":     "Courier",
}

// PDFRenderer paginates blocks into a PDF file at letter geometry.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(blocks []Block, profile language.Profile, path string) error {
	family, ok := fontFamilies[profile.Font]
	if !ok {
		family = "Times"
	}
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core PDF fonts are cp1252-only; text outside that range is mapped
	// best-effort, matching the source system's font handling.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	first := true
	for _, b := range blocks {
		if b.Role == RoleSpacer {
			pdf.Ln(spacerGap)
			first = false
			continue
		}
		st, ok := blockStyles[b.Role]
		if !ok {
			st = blockStyles[RoleBodyJustified]
		}
		if !first {
			pdf.Ln(st.before)
		}
		pdf.SetFont(family, st.fontStyle, st.size)
		pdf.MultiCell(0, st.leading, tr(b.Text), "", st.align, false)
		pdf.Ln(st.after)
		first = false
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return err
	}
	common.Logger().Info("layout: artifact written", "path", path, "blocks", len(blocks))
	return nil
}
