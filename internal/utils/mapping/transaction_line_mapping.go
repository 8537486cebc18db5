package mapping

import (
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/models"
)

// ToModelTransactionLine converts a domain TransactionLine into the row stored
// for documentID at the given upload position.
func ToModelTransactionLine(documentID string, position int, l domain.TransactionLine) models.TransactionLine {
	return models.TransactionLine{
		DocumentID:      documentID,
		LineID:          l.ID,
		Position:        position,
		Company:         l.Company,
		Particulars:     l.Particulars,
		TransactionDate: l.TransactionDate,
		VoucherNumber:   l.VoucherNumber,
		VoucherType:     l.VoucherType,
		NetAmount:       l.NetAmount,
	}
}

// ToDomainTransactionLine converts a model TransactionLine to a domain TransactionLine
func ToDomainTransactionLine(m models.TransactionLine) domain.TransactionLine {
	return domain.TransactionLine{
		ID:              m.LineID,
		Company:         m.Company,
		Particulars:     m.Particulars,
		TransactionDate: m.TransactionDate,
		VoucherNumber:   m.VoucherNumber,
		VoucherType:     m.VoucherType,
		NetAmount:       m.NetAmount,
	}
}

// ToDomainTransactionLineSlice converts rows to domain lines preserving order.
func ToDomainTransactionLineSlice(ms []models.TransactionLine) []domain.TransactionLine {
	ls := make([]domain.TransactionLine, len(ms))
	for i, m := range ms {
		ls[i] = ToDomainTransactionLine(m)
	}
	return ls
}
