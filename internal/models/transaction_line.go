package models

// TransactionLine is the row shape of the transaction_lines table. Amounts are
// stored as extracted text; they are parsed when a register is built.
type TransactionLine struct {
	DocumentID      string  `db:"document_id"`
	LineID          int64   `db:"line_id"`
	Position        int     `db:"position"` // Upload order within the document
	Company         string  `db:"company"`
	Particulars     string  `db:"particulars"`
	TransactionDate *string `db:"transaction_date"` // Nullable
	VoucherNumber   string  `db:"voucher_number"`
	VoucherType     string  `db:"voucher_type"`
	NetAmount       string  `db:"net_amount"`
}
