package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/core/itemized"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
	"github.com/xuri/excelize/v2"
)

// headerScanRows bounds how far down the sheet the header row is searched for.
// Exports often carry a title block above the table.
const headerScanRows = 15

const isoDate = "2006-01-02"

var dateLayouts = []string{isoDate, "02-01-2006", "02/01/2006", "2-Jan-2006", "2-Jan-06", "02.01.2006"}

// Reader extracts transaction lines from XLSX sales registers.
type Reader struct {
	lookup   map[string]Field
	validate *validator.Validate
}

// NewReader creates a Reader that locates columns through mapping.
func NewReader(mapping HeaderMapping) *Reader {
	v := validator.New()
	// Rows are validated with the same rules gin applies to JSON lines.
	v.SetTagName("binding")
	return &Reader{lookup: mapping.lookup(), validate: v}
}

// ReadLines reads the named sheet, or the first one when sheet is empty.
// Blank rows are skipped; rows without an id column get their sheet row
// number as id. Any invalid row fails the whole read with an error matching
// apperrors.ErrValidation.
func (r *Reader) ReadLines(ctx context.Context, src io.Reader, sheet string) ([]domain.TransactionLine, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: not a readable xlsx workbook: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		return nil, fmt.Errorf("%w: sheet %q not found", apperrors.ErrValidation, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %s: %w", sheet, err)
	}

	headerRow, columns, err := r.findHeader(rows)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.TransactionLine, 0, len(rows)-headerRow-1)
	for i := headerRow + 1; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isRowEmpty(rows[i]) {
			continue
		}
		line, err := r.parseRow(rows[i], columns, i+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// findHeader returns the index of the first row that names both a voucher
// number and a net amount column, with the field -> column positions it maps.
func (r *Reader) findHeader(rows [][]string) (int, map[Field]int, error) {
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		columns := make(map[Field]int)
		for c, caption := range rows[i] {
			field, ok := r.lookup[normalizeHeader(caption)]
			if !ok {
				continue
			}
			if _, seen := columns[field]; !seen {
				columns[field] = c
			}
		}
		_, hasVoucher := columns[FieldVoucherNumber]
		_, hasAmount := columns[FieldNetAmount]
		if hasVoucher && hasAmount {
			return i, columns, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: no header row with voucher number and net amount columns in the first %d rows", apperrors.ErrValidation, headerScanRows)
}

func (r *Reader) parseRow(row []string, columns map[Field]int, rowNumber int) (domain.TransactionLine, error) {
	cell := func(f Field) string {
		c, ok := columns[f]
		if !ok || c >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[c])
	}

	req := dto.TransactionLineRequest{
		ID:            int64(rowNumber),
		Company:       cell(FieldCompany),
		Particulars:   cell(FieldParticulars),
		VoucherNumber: cell(FieldVoucherNumber),
		VoucherType:   cell(FieldVoucherType),
		NetAmount:     cell(FieldNetAmount),
	}

	if raw := cell(FieldID); raw != "" {
		id, err := strconv.ParseFloat(raw, 64)
		if err != nil || id != float64(int64(id)) {
			return domain.TransactionLine{}, fmt.Errorf("%w: row %d: id %q is not an integer", apperrors.ErrValidation, rowNumber, raw)
		}
		req.ID = int64(id)
	}

	if raw := cell(FieldTransactionDate); raw != "" {
		date, err := parseDateCell(raw)
		if err != nil {
			return domain.TransactionLine{}, fmt.Errorf("%w: row %d: %v", apperrors.ErrValidation, rowNumber, err)
		}
		req.TransactionDate = &date
	}

	if err := r.validate.Struct(req); err != nil {
		return domain.TransactionLine{}, fmt.Errorf("%w: row %d: %v", apperrors.ErrValidation, rowNumber, err)
	}
	if _, err := itemized.ParseAmount(req.NetAmount); err != nil {
		return domain.TransactionLine{}, fmt.Errorf("row %d: %w", rowNumber, err)
	}

	return dto.ToDomainTransactionLine(req), nil
}

// parseDateCell accepts an Excel serial date or one of dateLayouts and
// returns it as YYYY-MM-DD.
func parseDateCell(raw string) (string, error) {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return "", fmt.Errorf("date %q: %v", raw, err)
		}
		return t.Format(isoDate), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(isoDate), nil
		}
	}
	return "", fmt.Errorf("date %q is not in a recognised format", raw)
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
