package mapping

import (
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	var period *string
	if d.Period != "" {
		p := d.Period
		period = &p
	}
	return models.Document{
		DocumentID:  d.DocumentID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		Period:      period,
		LineCount:   d.LineCount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	d := domain.Document{
		DocumentID:  m.DocumentID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Kind:        domain.DocumentKind(m.Kind),
		LineCount:   m.LineCount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.Period != nil {
		d.Period = *m.Period
	}
	return d
}

// ToDomainDocumentSlice converts a slice of model Documents to domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}
