// Package itemized turns flat transaction lines into the itemized invoice
// register: invoices grouped by voucher number, one column per item
// description, and per-invoice and grand totals. Everything here is pure and
// safe for concurrent use.
package itemized

import (
	"regexp"

	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
)

var (
	// "<description> (<quantity><unit> @ ₹<rate>) HSN: <code>"
	itemDetailPattern = regexp.MustCompile(`^\s*(.+?)\s*\(\s*([^()@]+?)\s*@\s*₹\s*([^()]+?)\s*\)\s*HSN:\s*(.+?)\s*$`)

	// "INV-2025-001: " style reference some extractors prepend to the description.
	invoicePrefixPattern = regexp.MustCompile(`^INV-\d+-\d+:\s*`)
)

// ItemDetailParser extracts item fields from a line's particulars.
type ItemDetailParser interface {
	Parse(particulars string) domain.ParsedItemDetail
}

// RegexItemDetailParser is the default ItemDetailParser.
type RegexItemDetailParser struct{}

var _ ItemDetailParser = RegexItemDetailParser{}

// Parse never fails: particulars that do not follow the pattern become the
// description verbatim.
func (RegexItemDetailParser) Parse(particulars string) domain.ParsedItemDetail {
	m := itemDetailPattern.FindStringSubmatch(particulars)
	if m == nil {
		return domain.ParsedItemDetail{Description: particulars}
	}
	return domain.ParsedItemDetail{
		Description:  invoicePrefixPattern.ReplaceAllString(m[1], ""),
		QuantityUnit: m[2],
		Rate:         m[3],
		HSNCode:      m[4],
	}
}

// DefaultParser is used by the package level helpers.
var DefaultParser ItemDetailParser = RegexItemDetailParser{}

// ParseItemDetail parses particulars with DefaultParser.
func ParseItemDetail(particulars string) domain.ParsedItemDetail {
	return DefaultParser.Parse(particulars)
}
