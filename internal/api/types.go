// File path: internal/api/types.go
package api

import "github.com/nyayasetu/nyayasetu/internal/document"

type generateRequest struct {
	Type string `json:"type"`
	document.Request
}

type generateResponse struct {
	ID       string        `json:"id"`
	Type     document.Type `json:"type"`
	Language string        `json:"language"`
	Artifact string        `json:"artifact"`
}
