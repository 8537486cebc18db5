package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/core/itemized"
	"github.com/qrtclosure/qrt_closure_app/internal/platform/spreadsheet"
	"github.com/qrtclosure/qrt_closure_app/internal/utils"
	"github.com/spf13/cobra"
)

type registerOptions struct {
	sheet       string
	mode        string
	expand      []string
	expandAll   bool
	mappingFile string
	out         string
}

func newRegisterCommand() *cobra.Command {
	var opts registerOptions

	cmd := &cobra.Command{
		Use:   "register <file.xlsx>",
		Short: "Print the itemized invoice register of a sales register workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "sheet to read (default: first sheet)")
	cmd.Flags().StringVar(&opts.mode, "mode", string(domain.ColumnModeCapped), "column mode: capped or complete")
	cmd.Flags().StringSliceVar(&opts.expand, "expand", nil, "invoice numbers to print with per-line detail")
	cmd.Flags().BoolVar(&opts.expandAll, "expand-all", false, "print per-line detail for every invoice")
	cmd.Flags().StringVar(&opts.mappingFile, "mapping", "", "YAML header alias file")
	cmd.Flags().StringVar(&opts.out, "out", "", "also write the register as an XLSX workbook to this path")

	return cmd
}

func runRegister(cmd *cobra.Command, path string, opts registerOptions) error {
	mode := domain.ColumnMode(strings.ToLower(opts.mode))
	if !domain.ValidColumnMode(mode) {
		return fmt.Errorf("invalid --mode %q: want %q or %q", opts.mode, domain.ColumnModeCapped, domain.ColumnModeComplete)
	}

	mapping, err := spreadsheet.LoadHeaderMapping(opts.mappingFile)
	if err != nil {
		return fmt.Errorf("loading header mapping: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	lines, err := spreadsheet.NewReader(mapping).ReadLines(cmd.Context(), f, opts.sheet)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	documentName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	reg, err := itemized.BuildRegister(documentName, lines, itemized.Options{
		Mode:      mode,
		Expanded:  itemized.NewExpandedSet(opts.expand...),
		ExpandAll: opts.expandAll,
	})
	if err != nil {
		return fmt.Errorf("building register: %w", err)
	}

	if err := printRegister(cmd.OutOrStdout(), reg); err != nil {
		return err
	}

	if opts.out != "" {
		data, err := spreadsheet.NewWriter().WriteRegister(reg)
		if err != nil {
			return fmt.Errorf("rendering workbook: %w", err)
		}
		if err := os.WriteFile(opts.out, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", opts.out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %s\n", opts.out)
	}
	return nil
}

// printRegister writes reg as a tab-aligned table followed by the detail
// lines of expanded invoices and the summary. Item cells are shown in whole
// rupees to keep the table narrow; totals and details keep paise.
func printRegister(out io.Writer, reg *domain.ItemizedRegister) error {
	fmt.Fprintf(out, "%s (%s mode)\n\n", reg.DocumentName, reg.Mode)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := append([]string{"Date", "Company", "Type", "Invoice"}, reg.Columns...)
	header = append(header, "Total Value", "Gross Total")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range reg.Rows {
		cells := []string{row.Date, row.Company, row.VoucherType, row.InvoiceNumber}
		for _, cell := range row.Cells {
			if cell.Empty() {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, utils.FormatINRWhole(cell.Amount))
		}
		cells = append(cells, utils.FormatINR(row.TotalValue), utils.FormatINR(row.GrossTotal))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing register table: %w", err)
	}

	for _, row := range reg.Rows {
		if !row.Expanded {
			continue
		}
		fmt.Fprintf(out, "\n%s (%d items)\n", row.InvoiceNumber, row.ItemCount)
		tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  Line\tDescription\tQty\tRate\tHSN\tAmount")
		for _, d := range row.Details {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%s\n",
				d.LineID, d.Description, d.QuantityUnit, d.Rate, d.HSNCode, utils.FormatINR(d.Amount))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing invoice details: %w", err)
		}
	}

	fmt.Fprintf(out, "\nInvoices: %d  Lines: %d  Grand total: %s  Gross grand total: %s\n",
		reg.InvoiceCount, reg.LineCount, utils.FormatINR(reg.GrandTotal), utils.FormatINR(reg.GrossGrandTotal))
	if len(reg.OmittedColumns) > 0 {
		fmt.Fprintf(out, "Omitted columns: %s\n", strings.Join(reg.OmittedColumns, ", "))
	}
	return nil
}
