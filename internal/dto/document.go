package dto

import (
	"time"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
)

// CreateDocumentRequest defines the data needed to register an uploaded document.
type CreateDocumentRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Kind   string `json:"kind" binding:"required,oneof=SALES_REGISTER PURCHASE_REGISTER GST_RETURN TDS_RETURN BANK_STATEMENT"`
	Period string `json:"period" binding:"omitempty,max=20"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID    string    `json:"documentID"`
	Name          string    `json:"name"`
	Kind          string    `json:"kind"`
	Period        string    `json:"period,omitempty"`
	LineCount     int       `json:"lineCount"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListDocumentsParams holds the cursor pagination query parameters.
type ListDocumentsParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListDocumentsResponse is one page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ImportLinesResponse reports how many lines were stored for a document.
type ImportLinesResponse struct {
	DocumentID string `json:"documentID"`
	Imported   int    `json:"imported"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:    d.DocumentID,
		Name:          d.Name,
		Kind:          string(d.Kind),
		Period:        d.Period,
		LineCount:     d.LineCount,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDocumentResponses converts a slice of domain.Document to []DocumentResponse.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return res
}
