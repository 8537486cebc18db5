package domain

import "github.com/shopspring/decimal"

// FallbackInvoiceDate is used as the invoice date when the first line of a
// voucher carries no transaction date.
const FallbackInvoiceDate = "2025-04-01"

// TransactionLine is one flat line item extracted from an accounting document.
// Lines are never mutated while a register is being built.
type TransactionLine struct {
	ID              int64   `json:"id"`
	Company         string  `json:"company"`
	Particulars     string  `json:"particulars"`
	TransactionDate *string `json:"transactionDate,omitempty"`
	VoucherNumber   string  `json:"voucherNumber"` // Grouping key, compared verbatim
	VoucherType     string  `json:"voucherType"`
	NetAmount       string  `json:"netAmount"` // Decimal as extracted; parsed when grouping
}

// InvoiceGroup is the set of lines sharing one voucher number. It has no
// identity outside the grouping call that produced it.
type InvoiceGroup struct {
	InvoiceNumber string            `json:"invoiceNumber"`
	Company       string            `json:"company"`
	Date          string            `json:"date"`
	VoucherType   string            `json:"voucherType"`
	Items         []TransactionLine `json:"items"`
	TotalValue    decimal.Decimal   `json:"totalValue"`
	GrossTotal    decimal.Decimal   `json:"grossTotal"` // Same sum as TotalValue, kept for the output schema
}

// ParsedItemDetail holds the fields extracted from a line's particulars.
type ParsedItemDetail struct {
	Description  string `json:"description"`
	QuantityUnit string `json:"quantityUnit"`
	Rate         string `json:"rate"`
	HSNCode      string `json:"hsnCode"`
}
