// File path: internal/layout/render_test.go
package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nyayasetu/nyayasetu/internal/language"
)

func TestPDFRendererWritesArtifact(t *testing.T) {
	profile := language.NewRegistry().Resolve("en")
	blocks := []Block{
		{Role: RoleSpacer},
		{Role: RoleSubheader, Text: "FACTS OF THE CASE:"},
		{Role: RoleBodyJustified, Text: "1. On 5 March 2023, untreated effluent was discharged into the lake."},
		{Role: RoleBodyCentered, Text: "Petitioner"},
	}
	path := filepath.Join(t.TempDir(), "PIL_Test_User_en.pdf")
	if err := NewPDFRenderer().Render(blocks, profile, path); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("artifact is empty")
	}
}

func TestPDFRendererFailsOnUnwritablePath(t *testing.T) {
	profile := language.NewRegistry().Resolve("en")
	path := filepath.Join(t.TempDir(), "missing", "nested", "out.pdf")
	err := NewPDFRenderer().Render([]Block{{Role: RoleBodyJustified, Text: "x"}}, profile, path)
	if err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}
