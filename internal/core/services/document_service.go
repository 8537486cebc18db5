package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/core/itemized"
	portsrepo "github.com/qrtclosure/qrt_closure_app/internal/core/ports/repositories"
	portssvc "github.com/qrtclosure/qrt_closure_app/internal/core/ports/services"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
	"github.com/qrtclosure/qrt_closure_app/internal/platform/spreadsheet"
)

// LineImporter reads transaction lines out of an uploaded workbook.
type LineImporter interface {
	ReadLines(ctx context.Context, src io.Reader, sheet string) ([]domain.TransactionLine, error)
}

// documentService implements portssvc.DocumentSvcFacade
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryFacade
	lineRepo     portsrepo.TransactionLineRepositoryFacade
	importer     LineImporter
}

// DocumentServiceOption is a functional option for configuring the document service
type DocumentServiceOption func(*documentService)

// WithLineImporter replaces the default spreadsheet reader.
func WithLineImporter(importer LineImporter) DocumentServiceOption {
	return func(s *documentService) {
		s.importer = importer
	}
}

// NewDocumentService creates a new document service with the provided options
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, lineRepo portsrepo.TransactionLineRepositoryFacade, options ...DocumentServiceOption) portssvc.DocumentSvcFacade {
	svc := &documentService{
		documentRepo: documentRepo,
		lineRepo:     lineRepo,
		importer:     spreadsheet.NewReader(spreadsheet.DefaultHeaderMapping()),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, userID string) (*domain.Document, error) {
	kind := domain.DocumentKind(req.Kind)
	if !domain.ValidDocumentKind(kind) {
		return nil, fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, req.Kind)
	}

	now := time.Now()
	document := domain.Document{
		DocumentID: uuid.NewString(),
		OwnerID:    userID,
		Name:       req.Name,
		Kind:       kind,
		Period:     req.Period,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		s.LogError(ctx, err, "Failed to save document", slog.String("document_id", document.DocumentID))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_id", document.DocumentID),
		slog.String("kind", string(kind)))
	return &document, nil
}

func (s *documentService) GetDocumentByID(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	if err := s.AuthorizeOwner(ctx, document, userID); err != nil {
		return nil, err
	}
	return document, nil
}

func (s *documentService) ListDocuments(ctx context.Context, userID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	var token *string
	if params.NextToken != "" {
		token = &params.NextToken
	}

	documents, nextToken, err := s.documentRepo.ListDocumentsByOwner(ctx, userID, params.Limit, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents")
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return &dto.ListDocumentsResponse{
		Documents: dto.ToDocumentResponses(documents),
		NextToken: nextToken,
	}, nil
}

func (s *documentService) AddLines(ctx context.Context, documentID string, lines []domain.TransactionLine, userID string) (int, error) {
	if _, err := s.GetDocumentByID(ctx, documentID, userID); err != nil {
		return 0, err
	}
	return s.appendLines(ctx, documentID, lines, userID)
}

func (s *documentService) ImportLines(ctx context.Context, documentID string, src io.Reader, sheet string, userID string) (int, error) {
	if _, err := s.GetDocumentByID(ctx, documentID, userID); err != nil {
		return 0, err
	}

	lines, err := s.importer.ReadLines(ctx, src, sheet)
	if err != nil {
		s.LogError(ctx, err, "Failed to read uploaded workbook", slog.String("document_id", documentID))
		return 0, fmt.Errorf("failed to import lines: %w", err)
	}
	return s.appendLines(ctx, documentID, lines, userID)
}

// appendLines rejects batches that could never build a register: empty
// batches, repeated line IDs and unparsable amounts.
func (s *documentService) appendLines(ctx context.Context, documentID string, lines []domain.TransactionLine, userID string) (int, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: no lines to add", apperrors.ErrValidation)
	}

	if err := checkUniqueLineIDs(lines); err != nil {
		return 0, err
	}
	for _, l := range lines {
		if _, err := itemized.ParseAmount(l.NetAmount); err != nil {
			return 0, fmt.Errorf("line %d: %w", l.ID, err)
		}
	}

	if err := s.lineRepo.AppendLines(ctx, documentID, lines, userID); err != nil {
		s.LogError(ctx, err, "Failed to store lines",
			slog.String("document_id", documentID),
			slog.Int("line_count", len(lines)))
		return 0, fmt.Errorf("failed to add lines to document %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Lines added to document",
		slog.String("document_id", documentID),
		slog.Int("line_count", len(lines)))
	return len(lines), nil
}

// checkUniqueLineIDs rejects a batch in which two lines share an ID.
func checkUniqueLineIDs(lines []domain.TransactionLine) error {
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("%w: line ID %d appears more than once", apperrors.ErrValidation, l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	return nil
}
