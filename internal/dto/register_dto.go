package dto

import (
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/utils"
	"github.com/shopspring/decimal"
)

// RegisterParams selects the column mode and the expanded invoices of a register.
type RegisterParams struct {
	Mode     domain.ColumnMode
	Expanded []string
}

// RegisterQuery is the query string form of RegisterParams.
type RegisterQuery struct {
	Mode     string   `form:"mode" binding:"omitempty,oneof=capped complete"`
	Expanded []string `form:"expanded"`
}

// PreviewRegisterRequest builds a register from lines posted inline.
type PreviewRegisterRequest struct {
	DocumentName string                   `json:"documentName" binding:"required,max=200"`
	Lines        []TransactionLineRequest `json:"lines" binding:"dive"`
	Mode         string                   `json:"mode" binding:"omitempty,oneof=capped complete"`
	Expanded     []string                 `json:"expanded"`
}

// ToggleRequest flips one invoice in the caller's expanded set.
type ToggleRequest struct {
	Expanded      []string `json:"expanded"`
	InvoiceNumber string   `json:"invoiceNumber" binding:"required"`
}

// ToggleResponse is the new expanded set.
type ToggleResponse struct {
	Expanded []string `json:"expanded"`
}

// RegisterCellResponse is one invoice/item intersection. Empty cells carry only the column.
type RegisterCellResponse struct {
	Column        string           `json:"column"`
	Empty         bool             `json:"empty"`
	LineID        *int64           `json:"lineID,omitempty"`
	QuantityUnit  string           `json:"quantityUnit,omitempty"`
	Rate          string           `json:"rate,omitempty"`
	HSNCode       string           `json:"hsnCode,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	AmountDisplay string           `json:"amountDisplay,omitempty"`
}

// LineDetailResponse is one line of an expanded invoice.
type LineDetailResponse struct {
	LineID        int64           `json:"lineID"`
	Description   string          `json:"description"`
	QuantityUnit  string          `json:"quantityUnit"`
	Rate          string          `json:"rate"`
	HSNCode       string          `json:"hsnCode"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amountDisplay"`
}

// RegisterRowResponse is one invoice row of the register.
type RegisterRowResponse struct {
	Date              string                 `json:"date"`
	Company           string                 `json:"company"`
	VoucherType       string                 `json:"voucherType"`
	InvoiceNumber     string                 `json:"invoiceNumber"`
	ItemCount         int                    `json:"itemCount"`
	TotalValue        decimal.Decimal        `json:"totalValue"`
	GrossTotal        decimal.Decimal        `json:"grossTotal"`
	TotalValueDisplay string                 `json:"totalValueDisplay"`
	GrossTotalDisplay string                 `json:"grossTotalDisplay"`
	Cells             []RegisterCellResponse `json:"cells"`
	Expanded          bool                   `json:"expanded"`
	Details           []LineDetailResponse   `json:"details,omitempty"`
}

// RegisterSummaryResponse holds the grand totals.
type RegisterSummaryResponse struct {
	InvoiceCount           int             `json:"invoiceCount"`
	LineCount              int             `json:"lineCount"`
	GrandTotal             decimal.Decimal `json:"grandTotal"`
	GrossGrandTotal        decimal.Decimal `json:"grossGrandTotal"`
	GrandTotalDisplay      string          `json:"grandTotalDisplay"`
	GrossGrandTotalDisplay string          `json:"grossGrandTotalDisplay"`
}

// ItemizedRegisterResponse is the JSON form of domain.ItemizedRegister.
type ItemizedRegisterResponse struct {
	DocumentName   string                  `json:"documentName"`
	Mode           string                  `json:"mode"`
	Columns        []string                `json:"columns"`
	OmittedColumns []string                `json:"omittedColumns"`
	Rows           []RegisterRowResponse   `json:"rows"`
	Summary        RegisterSummaryResponse `json:"summary"`
	Expanded       []string                `json:"expanded"`
}

// ToItemizedRegisterResponse converts a register to its DTO. expanded is
// echoed back so the client can keep carrying its toggle state.
func ToItemizedRegisterResponse(reg *domain.ItemizedRegister, expanded []string) ItemizedRegisterResponse {
	if expanded == nil {
		expanded = []string{}
	}
	response := ItemizedRegisterResponse{
		DocumentName:   reg.DocumentName,
		Mode:           string(reg.Mode),
		Columns:        reg.Columns,
		OmittedColumns: reg.OmittedColumns,
		Rows:           make([]RegisterRowResponse, len(reg.Rows)),
		Expanded:       expanded,
	}

	for i, row := range reg.Rows {
		rowResp := RegisterRowResponse{
			Date:              row.Date,
			Company:           row.Company,
			VoucherType:       row.VoucherType,
			InvoiceNumber:     row.InvoiceNumber,
			ItemCount:         row.ItemCount,
			TotalValue:        row.TotalValue,
			GrossTotal:        row.GrossTotal,
			TotalValueDisplay: utils.FormatINR(row.TotalValue),
			GrossTotalDisplay: utils.FormatINR(row.GrossTotal),
			Cells:             make([]RegisterCellResponse, len(row.Cells)),
			Expanded:          row.Expanded,
		}

		for c, cell := range row.Cells {
			cellResp := RegisterCellResponse{Column: reg.Columns[c], Empty: cell.Empty()}
			if !cell.Empty() {
				lineID := cell.Line.ID
				amount := cell.Amount
				cellResp.LineID = &lineID
				cellResp.QuantityUnit = cell.Detail.QuantityUnit
				cellResp.Rate = cell.Detail.Rate
				cellResp.HSNCode = cell.Detail.HSNCode
				cellResp.Amount = &amount
				cellResp.AmountDisplay = utils.FormatINR(amount)
			}
			rowResp.Cells[c] = cellResp
		}

		for _, d := range row.Details {
			rowResp.Details = append(rowResp.Details, LineDetailResponse{
				LineID:        d.LineID,
				Description:   d.Description,
				QuantityUnit:  d.QuantityUnit,
				Rate:          d.Rate,
				HSNCode:       d.HSNCode,
				Amount:        d.Amount,
				AmountDisplay: utils.FormatINR(d.Amount),
			})
		}

		response.Rows[i] = rowResp
	}

	response.Summary = RegisterSummaryResponse{
		InvoiceCount:           reg.InvoiceCount,
		LineCount:              reg.LineCount,
		GrandTotal:             reg.GrandTotal,
		GrossGrandTotal:        reg.GrossGrandTotal,
		GrandTotalDisplay:      utils.FormatINR(reg.GrandTotal),
		GrossGrandTotalDisplay: utils.FormatINR(reg.GrossGrandTotal),
	}

	return response
}
