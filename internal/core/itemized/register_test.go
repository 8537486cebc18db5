package itemized_test

import (
	"testing"

	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/core/itemized"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerLines() []domain.TransactionLine {
	return []domain.TransactionLine{
		line(1, "INV-2", "INV-2025-002: Widget (10kg @ ₹25.50) HSN: 8471", "255.00"),
		line(2, "INV-2", "Gadget (2 nos @ ₹100) HSN: 8517", "200.00"),
		line(3, "INV-1", "Widget (4kg @ ₹25.50) HSN: 8471", "102.00"),
		line(4, "INV-1", "Freight", "50"),
		line(5, "INV-1", "Packing", "10.50"),
	}
}

func TestBuildRegister(t *testing.T) {
	reg, err := itemized.BuildRegister("Sales Register Q1", registerLines(), itemized.Options{})
	require.NoError(t, err)

	assert.Equal(t, "Sales Register Q1", reg.DocumentName)
	assert.Equal(t, domain.ColumnModeCapped, reg.Mode)
	assert.Equal(t, 2, reg.InvoiceCount)
	assert.Equal(t, 5, reg.LineCount)
	assert.Equal(t, []string{"Widget", "Gadget", "Freight"}, reg.Columns)
	assert.Equal(t, []string{"Packing"}, reg.OmittedColumns)
	assert.True(t, decimal.RequireFromString("617.50").Equal(reg.GrandTotal))
	assert.True(t, reg.GrandTotal.Equal(reg.GrossGrandTotal))

	require.Len(t, reg.Rows, 2)
	first := reg.Rows[0]
	assert.Equal(t, "INV-2", first.InvoiceNumber)
	assert.Equal(t, 2, first.ItemCount)
	require.Len(t, first.Cells, 3)
	assert.False(t, first.Cells[0].Empty())
	assert.Equal(t, "10kg", first.Cells[0].Detail.QuantityUnit)
	assert.True(t, decimal.RequireFromString("255").Equal(first.Cells[0].Amount))
	assert.False(t, first.Cells[1].Empty())
	assert.True(t, first.Cells[2].Empty())
	assert.False(t, first.Expanded)
	assert.Nil(t, first.Details)
}

func TestBuildRegister_ExpandedDetailIgnoresCap(t *testing.T) {
	reg, err := itemized.BuildRegister("doc", registerLines(), itemized.Options{
		Expanded: itemized.NewExpandedSet("INV-1"),
	})
	require.NoError(t, err)

	second := reg.Rows[1]
	assert.True(t, second.Expanded)
	require.Len(t, second.Details, 3)
	assert.Equal(t, "Packing", second.Details[2].Description)
	assert.Equal(t, int64(5), second.Details[2].LineID)
	assert.True(t, decimal.RequireFromString("10.5").Equal(second.Details[2].Amount))
	assert.False(t, reg.Rows[0].Expanded)
}

func TestBuildRegister_ExpandAll(t *testing.T) {
	reg, err := itemized.BuildRegister("doc", registerLines(), itemized.Options{ExpandAll: true})
	require.NoError(t, err)

	for _, row := range reg.Rows {
		assert.True(t, row.Expanded)
		assert.Len(t, row.Details, row.ItemCount)
	}
}

func TestBuildRegister_CompleteMode(t *testing.T) {
	reg, err := itemized.BuildRegister("doc", registerLines(), itemized.Options{Mode: domain.ColumnModeComplete})
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget", "Gadget", "Freight", "Packing"}, reg.Columns)
	assert.Empty(t, reg.OmittedColumns)
	assert.Len(t, reg.Rows[0].Cells, 4)
}

type upperParser struct{}

func (upperParser) Parse(p string) domain.ParsedItemDetail {
	return domain.ParsedItemDetail{Description: "ALL"}
}

func TestBuildRegister_CustomParser(t *testing.T) {
	reg, err := itemized.BuildRegister("doc", registerLines(), itemized.Options{Parser: upperParser{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ALL"}, reg.Columns)
	assert.Equal(t, int64(1), reg.Rows[0].Cells[0].Line.ID)
}

func TestBuildRegister_Empty(t *testing.T) {
	reg, err := itemized.BuildRegister("empty", nil, itemized.Options{})
	require.NoError(t, err)
	assert.Empty(t, reg.Columns)
	assert.Empty(t, reg.Rows)
	assert.Equal(t, 0, reg.InvoiceCount)
	assert.True(t, reg.GrandTotal.IsZero())
}

func TestBuildRegister_InvalidAmount(t *testing.T) {
	lines := append(registerLines(), line(9, "INV-3", "x", "n/a"))
	reg, err := itemized.BuildRegister("doc", lines, itemized.Options{})
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
