// File path: internal/document/types.go

// Package document defines the shared domain types of the drafting
// pipeline: the closed set of document types, the caller's request, the
// generated fragment set, and the typed pipeline error.
package document

import (
	"fmt"
	"strings"
)

// Type identifies one of the supported document kinds. The set is closed;
// dispatch happens on the tag, never on open-ended subtyping.
type Type string

const (
	TypePIL       Type = "PIL"
	TypeRTI       Type = "RTI"
	TypeComplaint Type = "Complaint"
)

// Types lists every supported document type in a stable order.
func Types() []Type {
	return []Type{TypePIL, TypeRTI, TypeComplaint}
}

// ParseType resolves a case-insensitive document type name.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pil":
		return TypePIL, nil
	case "rti":
		return TypeRTI, nil
	case "complaint":
		return TypeComplaint, nil
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

// Request carries the caller-supplied inputs of one drafting invocation.
type Request struct {
	Issue    string `json:"issue"`
	Context  string `json:"context"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact,omitempty"`
	Language string `json:"language,omitempty"`
}

// Validate reports the first missing required field, if any.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.Issue) == "":
		return fmt.Errorf("issue required")
	case strings.TrimSpace(r.Name) == "":
		return fmt.Errorf("name required")
	case strings.TrimSpace(r.Location) == "":
		return fmt.Errorf("location required")
	}
	return nil
}

// Fragments maps fragment names to generated values. A value is either a
// plain string or an ordered []string for numbered-list fragments. A
// fragment set is owned by the generation step that produced it and is
// immutable once handed to the assembler.
type Fragments map[string]any

// Text returns the named string fragment, or "" when absent.
func (f Fragments) Text(name string) string {
	if v, ok := f[name].(string); ok {
		return v
	}
	return ""
}

// List returns the named list fragment, or nil when absent.
func (f Fragments) List(name string) []string {
	if v, ok := f[name].([]string); ok {
		return v
	}
	return nil
}

// Result describes a completed invocation.
type Result struct {
	Type         Type   `json:"type"`
	Language     string `json:"language"`
	ArtifactPath string `json:"artifact_path"`
}
