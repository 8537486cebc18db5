package services

import (
	"context"
	"io"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
)

// DocumentReaderSvc defines read operations for documents
type DocumentReaderSvc interface {
	// GetDocumentByID returns a document owned by userID.
	GetDocumentByID(ctx context.Context, documentID string, userID string) (*domain.Document, error)

	// ListDocuments returns one page of the user's documents.
	ListDocuments(ctx context.Context, userID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)
}

// DocumentWriterSvc defines write operations for documents and their lines
type DocumentWriterSvc interface {
	// CreateDocument registers a new, empty document.
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, userID string) (*domain.Document, error)

	// AddLines appends already-extracted lines to a document.
	AddLines(ctx context.Context, documentID string, lines []domain.TransactionLine, userID string) (int, error)

	// ImportLines reads lines from an XLSX sales register and appends them.
	// An empty sheet name selects the first sheet.
	ImportLines(ctx context.Context, documentID string, src io.Reader, sheet string, userID string) (int, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
