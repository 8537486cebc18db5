package services_test

import (
	"context"
	"io"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Document, *string, error) {
	args := m.Called(ctx, ownerID, limit, nextToken)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return docs, token, args.Error(2)
}

// --- Mock TransactionLineRepository ---
type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) ListLinesByDocument(ctx context.Context, documentID string) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

func (m *MockLineRepository) AppendLines(ctx context.Context, documentID string, lines []domain.TransactionLine, userID string) error {
	args := m.Called(ctx, documentID, lines, userID)
	return args.Error(0)
}

// --- Mock LineImporter ---
type MockLineImporter struct {
	mock.Mock
}

func (m *MockLineImporter) ReadLines(ctx context.Context, src io.Reader, sheet string) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, src, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

// --- Mock RegisterExporter ---
type MockRegisterExporter struct {
	mock.Mock
}

func (m *MockRegisterExporter) WriteRegister(reg *domain.ItemizedRegister) ([]byte, error) {
	args := m.Called(reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func ownedDocument(documentID, ownerID string) *domain.Document {
	return &domain.Document{
		DocumentID: documentID,
		OwnerID:    ownerID,
		Name:       "Sales Register Q1",
		Kind:       domain.SalesRegister,
	}
}

func salesLine(id int64, voucher, particulars, amount string) domain.TransactionLine {
	return domain.TransactionLine{
		ID:            id,
		Company:       "Acme Traders",
		Particulars:   particulars,
		VoucherNumber: voucher,
		VoucherType:   "Sales",
		NetAmount:     amount,
	}
}
