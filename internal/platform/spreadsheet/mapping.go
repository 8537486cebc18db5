package spreadsheet

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field names a TransactionLine attribute that a sheet column can feed.
type Field string

const (
	FieldID              Field = "id"
	FieldCompany         Field = "company"
	FieldParticulars     Field = "particulars"
	FieldTransactionDate Field = "transactionDate"
	FieldVoucherNumber   Field = "voucherNumber"
	FieldVoucherType     Field = "voucherType"
	FieldNetAmount       Field = "netAmount"
)

var allFields = []Field{
	FieldID, FieldCompany, FieldParticulars, FieldTransactionDate,
	FieldVoucherNumber, FieldVoucherType, FieldNetAmount,
}

// HeaderMapping lists, per field, the header captions that identify its column.
// Captions are compared after normalizeHeader.
type HeaderMapping map[Field][]string

// mappingFile is the YAML layout of an alias override file:
//
//	headers:
//	  voucherNumber: ["Bill No", "Invoice #"]
type mappingFile struct {
	Headers map[string][]string `yaml:"headers"`
}

// DefaultHeaderMapping returns the captions used by common Indian accounting
// exports (Tally sales registers and their derivatives).
func DefaultHeaderMapping() HeaderMapping {
	return HeaderMapping{
		FieldID:              {"id", "line id", "s no", "sl no", "sr no"},
		FieldCompany:         {"company", "party", "party name", "customer", "buyer"},
		FieldParticulars:     {"particulars", "item details", "description", "narration"},
		FieldTransactionDate: {"date", "transaction date", "invoice date", "voucher date"},
		FieldVoucherNumber:   {"voucher no", "voucher number", "vch no", "invoice no", "invoice number"},
		FieldVoucherType:     {"voucher type", "vch type"},
		FieldNetAmount:       {"net amount", "amount", "value", "taxable value"},
	}
}

// LoadHeaderMapping reads an alias file and puts its captions ahead of the
// defaults. An empty path returns the defaults.
func LoadHeaderMapping(path string) (HeaderMapping, error) {
	mapping := DefaultHeaderMapping()
	if path == "" {
		return mapping, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read header mapping file %s: %w", path, err)
	}
	return mergeHeaderMapping(mapping, raw)
}

func mergeHeaderMapping(mapping HeaderMapping, raw []byte) (HeaderMapping, error) {
	var file mappingFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse header mapping: %w", err)
	}

	for name, aliases := range file.Headers {
		field := Field(name)
		if _, known := mapping[field]; !known {
			return nil, fmt.Errorf("unknown field %q in header mapping", name)
		}
		mapping[field] = append(append([]string{}, aliases...), mapping[field]...)
	}
	return mapping, nil
}

// lookup returns a caption -> field index over normalized captions. The first
// field to claim a caption keeps it.
func (m HeaderMapping) lookup() map[string]Field {
	index := make(map[string]Field)
	for _, field := range allFields {
		for _, alias := range m[field] {
			key := normalizeHeader(alias)
			if _, taken := index[key]; !taken {
				index[key] = field
			}
		}
	}
	return index
}

// normalizeHeader lowercases a caption, turns '.', '_' and '-' into spaces
// and collapses runs of whitespace, so "Vch. No." and "vch_no" compare equal.
func normalizeHeader(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
