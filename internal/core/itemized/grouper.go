package itemized

import (
	"fmt"
	"strings"

	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a net amount string. Surrounding whitespace and
// thousands separators are ignored; anything else that is not a decimal
// number is a validation error.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: net amount %q is not a number", apperrors.ErrValidation, s)
	}
	return amount, nil
}

// GroupInvoices partitions lines into invoices keyed by voucher number.
// Groups come out in order of first appearance, members in input order, and
// the first member seeds the invoice's company, date and voucher type.
func GroupInvoices(lines []domain.TransactionLine) ([]domain.InvoiceGroup, error) {
	groups := make([]domain.InvoiceGroup, 0)
	index := make(map[string]int)

	for _, line := range lines {
		amount, err := ParseAmount(line.NetAmount)
		if err != nil {
			return nil, fmt.Errorf("line %d of voucher %q: %w", line.ID, line.VoucherNumber, err)
		}

		i, ok := index[line.VoucherNumber]
		if !ok {
			groups = append(groups, newInvoiceGroup(line))
			i = len(groups) - 1
			index[line.VoucherNumber] = i
		}

		g := &groups[i]
		g.Items = append(g.Items, line)
		g.TotalValue = g.TotalValue.Add(amount)
		g.GrossTotal = g.GrossTotal.Add(amount)
	}

	return groups, nil
}

func newInvoiceGroup(seed domain.TransactionLine) domain.InvoiceGroup {
	date := domain.FallbackInvoiceDate
	if seed.TransactionDate != nil && *seed.TransactionDate != "" {
		date = *seed.TransactionDate
	}
	return domain.InvoiceGroup{
		InvoiceNumber: seed.VoucherNumber,
		Company:       seed.Company,
		Date:          date,
		VoucherType:   seed.VoucherType,
		TotalValue:    decimal.Zero,
		GrossTotal:    decimal.Zero,
	}
}
