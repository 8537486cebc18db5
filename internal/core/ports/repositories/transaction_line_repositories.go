package repositories

import (
	"context"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
)

// TransactionLineReader defines read operations for extracted lines
type TransactionLineReader interface {
	// ListLinesByDocument returns a document's lines in upload order.
	ListLinesByDocument(ctx context.Context, documentID string) ([]domain.TransactionLine, error)
}

// TransactionLineWriter defines write operations for extracted lines
type TransactionLineWriter interface {
	// AppendLines stores lines after the document's existing ones in a single
	// transaction and bumps the document's line count. A line ID already
	// present in the document yields apperrors.ErrDuplicate.
	AppendLines(ctx context.Context, documentID string, lines []domain.TransactionLine, userID string) error
}

// TransactionLineRepositoryFacade combines all line-related repository interfaces
type TransactionLineRepositoryFacade interface {
	TransactionLineReader
	TransactionLineWriter
}

// TransactionLineRepositoryWithTx extends TransactionLineRepositoryFacade with transaction capabilities
type TransactionLineRepositoryWithTx interface {
	TransactionLineRepositoryFacade
	TransactionManager
}
