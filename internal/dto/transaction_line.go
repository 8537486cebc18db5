package dto

import "github.com/qrtclosure/qrt_closure_app/internal/core/domain"

// TransactionLineRequest is one extracted line as posted by the extraction
// pipeline or read from a spreadsheet row.
type TransactionLineRequest struct {
	ID              int64   `json:"id" binding:"required,gt=0"`
	Company         string  `json:"company" binding:"max=300"`
	Particulars     string  `json:"particulars" binding:"max=2000"`
	TransactionDate *string `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	VoucherNumber   string  `json:"voucherNumber" binding:"required,max=100"`
	VoucherType     string  `json:"voucherType" binding:"max=100"`
	NetAmount       string  `json:"netAmount" binding:"required"`
}

// AddLinesRequest appends lines to a document.
type AddLinesRequest struct {
	Lines []TransactionLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToDomainTransactionLine converts a request line to a domain.TransactionLine.
func ToDomainTransactionLine(r TransactionLineRequest) domain.TransactionLine {
	return domain.TransactionLine{
		ID:              r.ID,
		Company:         r.Company,
		Particulars:     r.Particulars,
		TransactionDate: r.TransactionDate,
		VoucherNumber:   r.VoucherNumber,
		VoucherType:     r.VoucherType,
		NetAmount:       r.NetAmount,
	}
}

// ToDomainTransactionLines converts request lines preserving their order.
func ToDomainTransactionLines(rs []TransactionLineRequest) []domain.TransactionLine {
	lines := make([]domain.TransactionLine, len(rs))
	for i, r := range rs {
		lines[i] = ToDomainTransactionLine(r)
	}
	return lines
}
