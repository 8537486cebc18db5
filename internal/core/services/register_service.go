package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/core/itemized"
	portsrepo "github.com/qrtclosure/qrt_closure_app/internal/core/ports/repositories"
	portssvc "github.com/qrtclosure/qrt_closure_app/internal/core/ports/services"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
	"github.com/qrtclosure/qrt_closure_app/internal/platform/spreadsheet"
)

// RegisterExporter renders a register as a downloadable workbook.
type RegisterExporter interface {
	WriteRegister(reg *domain.ItemizedRegister) ([]byte, error)
}

// registerService implements portssvc.RegisterService
type registerService struct {
	BaseService
	documentRepo portsrepo.DocumentReader
	lineRepo     portsrepo.TransactionLineReader
	defaultMode  domain.ColumnMode
	parser       itemized.ItemDetailParser
	exporter     RegisterExporter
}

// RegisterServiceOption is a functional option for configuring the register service
type RegisterServiceOption func(*registerService)

// WithDefaultColumnMode sets the mode used when a request does not name one.
func WithDefaultColumnMode(mode domain.ColumnMode) RegisterServiceOption {
	return func(s *registerService) {
		s.defaultMode = mode
	}
}

// WithItemDetailParser replaces the default particulars parser.
func WithItemDetailParser(parser itemized.ItemDetailParser) RegisterServiceOption {
	return func(s *registerService) {
		s.parser = parser
	}
}

// WithRegisterExporter replaces the default XLSX writer.
func WithRegisterExporter(exporter RegisterExporter) RegisterServiceOption {
	return func(s *registerService) {
		s.exporter = exporter
	}
}

// NewRegisterService creates a new register service with the provided options
func NewRegisterService(documentRepo portsrepo.DocumentReader, lineRepo portsrepo.TransactionLineReader, options ...RegisterServiceOption) portssvc.RegisterService {
	svc := &registerService{
		documentRepo: documentRepo,
		lineRepo:     lineRepo,
		defaultMode:  domain.ColumnModeCapped,
		parser:       itemized.DefaultParser,
		exporter:     spreadsheet.NewWriter(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RegisterService = (*registerService)(nil)

func (s *registerService) options(params dto.RegisterParams) itemized.Options {
	mode := params.Mode
	if mode == "" {
		mode = s.defaultMode
	}
	return itemized.Options{
		Mode:     mode,
		Expanded: itemized.NewExpandedSet(params.Expanded...),
		Parser:   s.parser,
	}
}

// loadDocumentLines fetches an owned document with its lines in upload order.
func (s *registerService) loadDocumentLines(ctx context.Context, documentID, userID string) (*domain.Document, []domain.TransactionLine, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	if err := s.AuthorizeOwner(ctx, document, userID); err != nil {
		return nil, nil, err
	}

	lines, err := s.lineRepo.ListLinesByDocument(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load document lines", slog.String("document_id", documentID))
		return nil, nil, fmt.Errorf("failed to load lines of document %s: %w", documentID, err)
	}
	return document, lines, nil
}

func (s *registerService) DocumentRegister(ctx context.Context, documentID string, userID string, params dto.RegisterParams) (*domain.ItemizedRegister, error) {
	document, lines, err := s.loadDocumentLines(ctx, documentID, userID)
	if err != nil {
		return nil, err
	}

	register, err := itemized.BuildRegister(document.Name, lines, s.options(params))
	if err != nil {
		s.LogError(ctx, err, "Failed to build register", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to build register for document %s: %w", documentID, err)
	}

	s.LogDebug(ctx, "Register built",
		slog.String("document_id", documentID),
		slog.Int("invoice_count", register.InvoiceCount),
		slog.Int("omitted_columns", len(register.OmittedColumns)))
	return register, nil
}

func (s *registerService) PreviewRegister(ctx context.Context, documentName string, lines []domain.TransactionLine, params dto.RegisterParams) (*domain.ItemizedRegister, error) {
	if err := checkUniqueLineIDs(lines); err != nil {
		return nil, fmt.Errorf("failed to build register preview: %w", err)
	}
	register, err := itemized.BuildRegister(documentName, lines, s.options(params))
	if err != nil {
		return nil, fmt.Errorf("failed to build register preview: %w", err)
	}
	return register, nil
}

func (s *registerService) ExportDocumentRegister(ctx context.Context, documentID string, userID string, params dto.RegisterParams) ([]byte, error) {
	document, lines, err := s.loadDocumentLines(ctx, documentID, userID)
	if err != nil {
		return nil, err
	}

	opts := s.options(params)
	opts.ExpandAll = true
	register, err := itemized.BuildRegister(document.Name, lines, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build register for document %s: %w", documentID, err)
	}

	out, err := s.exporter.WriteRegister(register)
	if err != nil {
		s.LogError(ctx, err, "Failed to render register workbook", slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to export register for document %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Register exported",
		slog.String("document_id", documentID),
		slog.Int("bytes", len(out)))
	return out, nil
}

func (s *registerService) ToggleExpanded(expanded []string, invoiceNumber string) []string {
	return itemized.Toggle(itemized.NewExpandedSet(expanded...), invoiceNumber).Keys()
}
