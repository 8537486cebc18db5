package itemized

import (
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Options controls how a register is built. The zero value builds a capped
// register with nothing expanded using DefaultParser.
type Options struct {
	Mode     domain.ColumnMode
	Expanded ExpandedSet
	// ExpandAll expands every invoice regardless of Expanded. Exports use it.
	ExpandAll bool
	Parser    ItemDetailParser
}

// BuildRegister groups lines into invoices and lays them out as the itemized
// register view model.
func BuildRegister(documentName string, lines []domain.TransactionLine, opts Options) (*domain.ItemizedRegister, error) {
	if opts.Mode == "" {
		opts.Mode = domain.ColumnModeCapped
	}
	if opts.Parser == nil {
		opts.Parser = DefaultParser
	}

	groups, err := GroupInvoices(lines)
	if err != nil {
		return nil, err
	}

	parsed := parseGroups(groups, opts.Parser)
	columns, omitted := buildColumns(groups, parsed, opts.Mode)

	register := &domain.ItemizedRegister{
		DocumentName:    documentName,
		Mode:            opts.Mode,
		Columns:         columns,
		OmittedColumns:  omitted,
		Rows:            make([]domain.RegisterRow, len(groups)),
		InvoiceCount:    len(groups),
		LineCount:       len(lines),
		GrandTotal:      decimal.Zero,
		GrossGrandTotal: decimal.Zero,
	}

	for i, g := range groups {
		row := domain.RegisterRow{
			InvoiceGroup: g,
			ItemCount:    len(g.Items),
			Cells:        make([]domain.RegisterCell, len(columns)),
			Expanded:     opts.ExpandAll || opts.Expanded.Has(g.InvoiceNumber),
		}

		for c, name := range columns {
			j := matchIndex(parsed[i], name)
			if j < 0 {
				continue
			}
			line := g.Items[j]
			// Amounts were validated by GroupInvoices.
			amount, _ := ParseAmount(line.NetAmount)
			row.Cells[c] = domain.RegisterCell{Line: &line, Detail: parsed[i][j], Amount: amount}
		}

		if row.Expanded {
			row.Details = make([]domain.LineDetail, len(g.Items))
			for j, item := range g.Items {
				amount, _ := ParseAmount(item.NetAmount)
				row.Details[j] = domain.LineDetail{LineID: item.ID, ParsedItemDetail: parsed[i][j], Amount: amount}
			}
		}

		register.Rows[i] = row
		register.GrandTotal = register.GrandTotal.Add(g.TotalValue)
		register.GrossGrandTotal = register.GrossGrandTotal.Add(g.GrossTotal)
	}

	return register, nil
}
