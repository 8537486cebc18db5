package itemized_test

import (
	"testing"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/core/itemized"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(desc string) string {
	return desc + " (1 nos @ ₹10) HSN: 1000"
}

// capFixture has item counts [2,5,1] and six distinct descriptions.
func capFixture(t *testing.T) []domain.InvoiceGroup {
	t.Helper()
	lines := []domain.TransactionLine{
		line(1, "A", item("d1"), "10"),
		line(2, "A", item("d2"), "10"),
		line(3, "B", item("d3"), "10"),
		line(4, "B", item("d4"), "10"),
		line(5, "B", item("d5"), "10"),
		line(6, "B", item("d6"), "10"),
		line(7, "B", item("d1"), "10"),
		line(8, "C", item("d2"), "10"),
	}
	groups, err := itemized.GroupInvoices(lines)
	require.NoError(t, err)
	return groups
}

func TestBuildColumns_CappedByLargestInvoice(t *testing.T) {
	columns := itemized.BuildColumns(capFixture(t), domain.ColumnModeCapped)
	assert.Equal(t, []string{"d1", "d2", "d3", "d4", "d5"}, columns)
}

func TestBuildColumns_Complete(t *testing.T) {
	columns := itemized.BuildColumns(capFixture(t), domain.ColumnModeComplete)
	assert.Equal(t, []string{"d1", "d2", "d3", "d4", "d5", "d6"}, columns)
}

func TestBuildColumns_FirstOccurrenceWins(t *testing.T) {
	groups, err := itemized.GroupInvoices([]domain.TransactionLine{
		line(1, "A", "Freight", "1"),
		line(2, "A", "INV-1-1: Bolt (1 nos @ ₹1) HSN: 7318", "1"),
		line(3, "B", "Bolt (9 nos @ ₹1) HSN: 7318", "1"),
		line(4, "B", "Freight", "1"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Freight", "Bolt"}, itemized.BuildColumns(groups, domain.ColumnModeCapped))
}

func TestBuildColumns_Empty(t *testing.T) {
	assert.Empty(t, itemized.BuildColumns(nil, domain.ColumnModeCapped))
	assert.Empty(t, itemized.BuildColumns([]domain.InvoiceGroup{}, domain.ColumnModeComplete))
}

func TestMatchForColumn(t *testing.T) {
	groups, err := itemized.GroupInvoices([]domain.TransactionLine{
		line(1, "A", item("Widget"), "10"),
		line(2, "A", item("Gadget"), "20"),
		line(3, "A", item("Widget"), "30"),
	})
	require.NoError(t, err)

	got, ok := itemized.MatchForColumn(groups[0], "Widget")
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID)

	_, ok = itemized.MatchForColumn(groups[0], "Sprocket")
	assert.False(t, ok)
}
