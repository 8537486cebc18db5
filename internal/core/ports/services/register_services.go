package services

import (
	"context"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
)

// RegisterService builds the itemized invoice register
type RegisterService interface {
	// DocumentRegister builds the register of a stored document owned by userID.
	DocumentRegister(ctx context.Context, documentID string, userID string, params dto.RegisterParams) (*domain.ItemizedRegister, error)

	// PreviewRegister builds a register from lines that are not stored.
	PreviewRegister(ctx context.Context, documentName string, lines []domain.TransactionLine, params dto.RegisterParams) (*domain.ItemizedRegister, error)

	// ExportDocumentRegister renders a stored document's register as an XLSX workbook.
	ExportDocumentRegister(ctx context.Context, documentID string, userID string, params dto.RegisterParams) ([]byte, error)

	// ToggleExpanded flips invoiceNumber in the expanded set and returns the new set.
	ToggleExpanded(expanded []string, invoiceNumber string) []string
}
