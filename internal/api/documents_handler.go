// File path: internal/api/documents_handler.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/nyayasetu/nyayasetu/internal/common"
	"github.com/nyayasetu/nyayasetu/internal/document"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: generate decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	typ, err := document.ParseType(req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := req.Request.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := uuid.NewString()
	logger.Info("api: generate request received", "id", id, "type", typ, "language", req.Request.Language)
	result, err := s.toolkit.Generate(r.Context(), typ, req.Request)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{
		ID:       id,
		Type:     result.Type,
		Language: result.Language,
		Artifact: result.ArtifactPath,
	})
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"types": document.Types()})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"languages": s.registry.Codes()})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"logs": common.LogEntries()})
}

// statusForError maps pipeline failures onto HTTP statuses: upstream
// generation and translation problems read as bad gateway, local
// misconfiguration and rendering as internal errors.
func statusForError(err error) int {
	switch document.KindOf(err) {
	case document.KindGenerationFailure, document.KindTranslationFailure:
		return http.StatusBadGateway
	case document.KindTemplateMissing, document.KindMissingField, document.KindRenderFailure:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
