package spreadsheet

import (
	"fmt"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	RegisterSheet = "Register"
	DetailsSheet  = "Details"
)

// envelopeHeaders precede the item columns on the register sheet.
var envelopeHeaders = []string{"Date", "Company", "Voucher Type", "Invoice No", "Items"}

var detailHeaders = []string{"Invoice No", "Line ID", "Description", "Quantity/Unit", "Rate", "HSN", "Net Amount"}

// amountFormat renders amounts with Indian digit grouping.
const amountFormat = `[>=10000000]##\,##\,##\,##0.00;[>=100000]##\,##\,##0.00;##,##0.00`

// Writer renders itemized registers as XLSX workbooks.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteRegister renders reg and returns the workbook bytes. The register
// sheet holds one row per invoice and a totals row; the details sheet lists
// the lines of every expanded invoice.
func (w *Writer) WriteRegister(reg *domain.ItemizedRegister) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RegisterSheet); err != nil {
		return nil, fmt.Errorf("failed to name register sheet: %w", err)
	}
	if _, err := f.NewSheet(DetailsSheet); err != nil {
		return nil, fmt.Errorf("failed to create details sheet: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(amountFormat)})
	if err != nil {
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeRegisterSheet(f, reg, amountStyle, headerStyle); err != nil {
		return nil, err
	}
	if err := writeDetailsSheet(f, reg, amountStyle, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRegisterSheet(f *excelize.File, reg *domain.ItemizedRegister, amountStyle, headerStyle int) error {
	sheet := RegisterSheet
	headers := append(append(append([]string{}, envelopeHeaders...), reg.Columns...), "Total Value", "Gross Total")
	if err := writeHeaderRow(f, sheet, headers, headerStyle); err != nil {
		return err
	}

	firstItemCol := len(envelopeHeaders) + 1
	totalCol := firstItemCol + len(reg.Columns)
	columnTotals := make([]decimal.Decimal, len(reg.Columns))

	row := 2
	for _, r := range reg.Rows {
		values := []any{r.Date, r.Company, r.VoucherType, r.InvoiceNumber, r.ItemCount}
		for c, cell := range r.Cells {
			if cell.Empty() {
				values = append(values, nil)
				continue
			}
			values = append(values, cell.Amount.InexactFloat64())
			columnTotals[c] = columnTotals[c].Add(cell.Amount)
		}
		values = append(values, r.TotalValue.InexactFloat64(), r.GrossTotal.InexactFloat64())
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	totals := make([]any, totalCol+1)
	totals[0] = "Total"
	totals[len(envelopeHeaders)-1] = reg.LineCount
	for c, t := range columnTotals {
		totals[firstItemCol-1+c] = t.InexactFloat64()
	}
	totals[totalCol-1] = reg.GrandTotal.InexactFloat64()
	totals[totalCol] = reg.GrossGrandTotal.InexactFloat64()
	if err := writeRow(f, sheet, row, totals); err != nil {
		return err
	}
	if err := styleRow(f, sheet, row, len(totals), headerStyle); err != nil {
		return err
	}

	first, _ := excelize.CoordinatesToCellName(firstItemCol, 2)
	last, _ := excelize.CoordinatesToCellName(totalCol+1, row)
	if err := f.SetCellStyle(sheet, first, last, amountStyle); err != nil {
		return fmt.Errorf("failed to style amounts: %w", err)
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 32) // company
	_ = f.SetColWidth(sheet, "C", "D", 16)
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeDetailsSheet(f *excelize.File, reg *domain.ItemizedRegister, amountStyle, headerStyle int) error {
	sheet := DetailsSheet
	if err := writeHeaderRow(f, sheet, detailHeaders, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, r := range reg.Rows {
		for _, d := range r.Details {
			values := []any{r.InvoiceNumber, d.LineID, d.Description, d.QuantityUnit, d.Rate, d.HSNCode, d.Amount.InexactFloat64()}
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if row > 2 {
		first, _ := excelize.CoordinatesToCellName(len(detailHeaders), 2)
		last, _ := excelize.CoordinatesToCellName(len(detailHeaders), row-1)
		if err := f.SetCellStyle(sheet, first, last, amountStyle); err != nil {
			return fmt.Errorf("failed to style detail amounts: %w", err)
		}
	}
	_ = f.SetColWidth(sheet, "C", "C", 40) // description
	return nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string, style int) error {
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := writeRow(f, sheet, 1, values); err != nil {
		return err
	}
	return styleRow(f, sheet, 1, len(headers), style)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, width, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(width, row)
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("failed to style %s row %d: %w", sheet, row, err)
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
