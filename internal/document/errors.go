// File path: internal/document/errors.go
package document

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a pipeline failure. Every failure aborts the
// invocation; there are no retries and no partial artifacts.
type ErrorKind string

const (
	KindGenerationFailure  ErrorKind = "generation_failure"
	KindTemplateMissing    ErrorKind = "template_missing"
	KindMissingField       ErrorKind = "missing_field"
	KindTranslationFailure ErrorKind = "translation_failure"
	KindRenderFailure      ErrorKind = "render_failure"
)

// Error is the failure surfaced to callers: the kind, the pipeline stage
// that produced it, and the wrapped cause.
type Error struct {
	Kind  ErrorKind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fail wraps err as a pipeline error of the given kind and stage.
func Fail(kind ErrorKind, stage string, err error) *Error {
	return &Error{Kind: kind, Stage: stage, Err: err}
}

// KindOf returns the kind carried by err, or "" when err is not a
// pipeline error.
func KindOf(err error) ErrorKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
