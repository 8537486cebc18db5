package domain

import "github.com/shopspring/decimal"

// ColumnMode selects how item columns are derived for the register.
type ColumnMode string

const (
	// ColumnModeCapped clips the columns to the item count of the largest invoice.
	ColumnModeCapped ColumnMode = "capped"
	// ColumnModeComplete keeps one column per distinct item description.
	ColumnModeComplete ColumnMode = "complete"
)

// ValidColumnMode reports whether m is a known mode.
func ValidColumnMode(m ColumnMode) bool {
	return m == ColumnModeCapped || m == ColumnModeComplete
}

// RegisterCell is the intersection of an invoice row and an item column.
// Empty cells have a nil Line.
type RegisterCell struct {
	Line   *TransactionLine
	Detail ParsedItemDetail
	Amount decimal.Decimal
}

// Empty reports whether no line of the invoice matched the column.
func (c RegisterCell) Empty() bool {
	return c.Line == nil
}

// LineDetail is one entry of the expanded per-line view of an invoice.
type LineDetail struct {
	LineID int64
	ParsedItemDetail
	Amount decimal.Decimal
}

// RegisterRow is one invoice in the itemized register.
type RegisterRow struct {
	InvoiceGroup
	ItemCount int
	Cells     []RegisterCell // One per register column, same order
	Expanded  bool
	Details   []LineDetail // Populated only when Expanded
}

// ItemizedRegister is the tabular view model of a document's invoices.
type ItemizedRegister struct {
	DocumentName    string
	Mode            ColumnMode
	Columns         []string
	OmittedColumns  []string // Distinct descriptions dropped by ColumnModeCapped
	Rows            []RegisterRow
	InvoiceCount    int
	LineCount       int
	GrandTotal      decimal.Decimal
	GrossGrandTotal decimal.Decimal
}
