package models

// Document is the row shape of the documents table.
type Document struct {
	DocumentID string  `db:"document_id"`
	OwnerID    string  `db:"owner_id"`
	Name       string  `db:"name"`
	Kind       string  `db:"kind"`
	Period     *string `db:"period"` // Nullable
	LineCount  int     `db:"line_count"`
	AuditFields
}
