package repositories

import (
	"context"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a document by its ID.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocumentsByOwner retrieves one page of a user's documents, newest
	// first. The returned token is nil on the last page.
	ListDocumentsByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Document, *string, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, document domain.Document) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// DocumentRepositoryWithTx extends DocumentRepositoryFacade with transaction capabilities
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	TransactionManager
}
