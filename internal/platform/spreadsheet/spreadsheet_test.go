package spreadsheet

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/itemized"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbook builds an in-memory xlsx whose first sheet holds rows.
func workbook(t *testing.T, sheet string, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "" {
		require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	} else {
		sheet = f.GetSheetName(0)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		values := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func salesRegister(t *testing.T) *bytes.Reader {
	return workbook(t, "Sales", [][]any{
		{"Sales Register 01-Apr-2025 to 30-Jun-2025"},
		{},
		{"Date", "Party Name", "Particulars", "Vch Type", "Vch. No.", "Net Amount"},
		{"2025-04-03", "Acme Traders", "Widget (10kg @ ₹25.50) HSN: 8471", "Sales", "INV-1", 255},
		{"", "Acme Traders", "Freight", "Sales", "INV-1", "50.00"},
		{},
		{"05/04/2025", "Bharat Stores", "Gadget (2 nos @ ₹100) HSN: 8517", "Sales", "INV-2", "1,200.50"},
	})
}

func TestReadLines(t *testing.T) {
	r := NewReader(DefaultHeaderMapping())

	lines, err := r.ReadLines(context.Background(), salesRegister(t), "")
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, int64(4), lines[0].ID, "sheet row number is the id when no id column exists")
	assert.Equal(t, "Acme Traders", lines[0].Company)
	assert.Equal(t, "INV-1", lines[0].VoucherNumber)
	assert.Equal(t, "Sales", lines[0].VoucherType)
	assert.Equal(t, "255", lines[0].NetAmount)
	require.NotNil(t, lines[0].TransactionDate)
	assert.Equal(t, "2025-04-03", *lines[0].TransactionDate)

	assert.Nil(t, lines[1].TransactionDate)
	assert.Equal(t, int64(7), lines[2].ID)
	assert.Equal(t, "2025-04-05", *lines[2].TransactionDate)
	assert.Equal(t, "1,200.50", lines[2].NetAmount)

	groups, err := itemized.GroupInvoices(lines)
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestReadLines_IDColumnAndNamedSheet(t *testing.T) {
	src := workbook(t, "Lines", [][]any{
		{"ID", "Voucher Number", "Amount"},
		{101, "V-1", "10"},
		{102, "V-1", "20"},
	})

	lines, err := NewReader(DefaultHeaderMapping()).ReadLines(context.Background(), src, "Lines")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(101), lines[0].ID)
	assert.Equal(t, int64(102), lines[1].ID)
}

func TestReadLines_Errors(t *testing.T) {
	r := NewReader(DefaultHeaderMapping())
	ctx := context.Background()

	tests := []struct {
		name  string
		src   *bytes.Reader
		sheet string
	}{
		{
			name: "missing sheet",
			src:  workbook(t, "Sales", [][]any{{"Voucher No", "Amount"}}),
			sheet: "Purchases",
		},
		{
			name: "no header row",
			src:  workbook(t, "", [][]any{{"foo", "bar"}, {"1", "2"}}),
		},
		{
			name: "bad amount",
			src:  workbook(t, "", [][]any{{"Voucher No", "Amount"}, {"V-1", "twelve"}}),
		},
		{
			name: "missing voucher",
			src:  workbook(t, "", [][]any{{"Voucher No", "Amount"}, {"", "12"}}),
		},
		{
			name: "bad date",
			src:  workbook(t, "", [][]any{{"Date", "Voucher No", "Amount"}, {"someday", "V-1", "12"}}),
		},
		{
			name: "fractional id",
			src:  workbook(t, "", [][]any{{"Id", "Voucher No", "Amount"}, {"1.5", "V-1", "12"}}),
		},
		{
			name: "not a workbook",
			src:  bytes.NewReader([]byte("date,voucher,amount\n")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ReadLines(ctx, tt.src, tt.sheet)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestLoadHeaderMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headers:\n  voucherNumber: [\"Bill #\"]\n  netAmount: [\"Bill Value\"]\n"), 0o600))

	mapping, err := LoadHeaderMapping(path)
	require.NoError(t, err)
	assert.Equal(t, "Bill #", mapping[FieldVoucherNumber][0])
	assert.Contains(t, mapping[FieldVoucherNumber], "voucher no", "defaults are kept after overrides")

	src := workbook(t, "", [][]any{{"Bill #", "Bill Value"}, {"B-7", "99.90"}})
	lines, err := NewReader(mapping).ReadLines(context.Background(), src, "")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "B-7", lines[0].VoucherNumber)
}

func TestLoadHeaderMapping_Errors(t *testing.T) {
	_, err := LoadHeaderMapping(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = mergeHeaderMapping(DefaultHeaderMapping(), []byte("headers:\n  gstin: [\"GSTIN\"]\n"))
	assert.ErrorContains(t, err, "unknown field")

	mapping, err := LoadHeaderMapping("")
	require.NoError(t, err)
	assert.Equal(t, DefaultHeaderMapping(), mapping)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "vch no", normalizeHeader("  Vch. No. "))
	assert.Equal(t, "voucher no", normalizeHeader("VOUCHER_NO"))
	assert.Equal(t, "net amount", normalizeHeader("Net\tAmount"))
}

func TestParseDateCell(t *testing.T) {
	tests := map[string]string{
		"45748":      "2025-04-01",
		"2025-04-01": "2025-04-01",
		"01-04-2025": "2025-04-01",
		"1-Apr-25":   "2025-04-01",
	}
	for raw, want := range tests {
		got, err := parseDateCell(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestWriteRegister(t *testing.T) {
	lines, err := NewReader(DefaultHeaderMapping()).ReadLines(context.Background(), salesRegister(t), "")
	require.NoError(t, err)
	reg, err := itemized.BuildRegister("Q1 Sales", lines, itemized.Options{ExpandAll: true})
	require.NoError(t, err)

	out, err := NewWriter().WriteRegister(reg)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{RegisterSheet, DetailsSheet}, f.GetSheetList())

	rows, err := f.GetRows(RegisterSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4, "header, two invoices and the totals row")
	assert.Equal(t, []string{"Date", "Company", "Voucher Type", "Invoice No", "Items", "Widget", "Freight", "Total Value", "Gross Total"}, rows[0])
	assert.Equal(t, "INV-1", rows[1][3])
	assert.Equal(t, "255", rows[1][5])
	assert.Equal(t, "305", rows[1][7])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "1505.5", rows[3][7])

	details, err := f.GetRows(DetailsSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, details, 4)
	assert.Equal(t, []string{"INV-1", "4", "Widget", "10kg", "25.50", "8471", "255"}, details[1])
}
