package domain

// DocumentKind classifies an uploaded accounting document.
type DocumentKind string

const (
	SalesRegister    DocumentKind = "SALES_REGISTER"
	PurchaseRegister DocumentKind = "PURCHASE_REGISTER"
	GSTReturn        DocumentKind = "GST_RETURN"
	TDSReturn        DocumentKind = "TDS_RETURN"
	BankStatement    DocumentKind = "BANK_STATEMENT"
)

// ValidDocumentKind reports whether k is one of the known kinds.
func ValidDocumentKind(k DocumentKind) bool {
	switch k {
	case SalesRegister, PurchaseRegister, GSTReturn, TDSReturn, BankStatement:
		return true
	}
	return false
}

// Document is an uploaded accounting document whose extracted transaction
// lines feed the itemized register.
type Document struct {
	DocumentID string       `json:"documentID"` // Primary Key (UUID)
	OwnerID    string       `json:"ownerID"`    // User that uploaded the document
	Name       string       `json:"name"`       // Display label used as the register title
	Kind       DocumentKind `json:"kind"`
	Period     string       `json:"period"` // Closure quarter, e.g. "2025-Q1"
	LineCount  int          `json:"lineCount"`
	AuditFields
}
