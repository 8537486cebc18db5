package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	portsrepo "github.com/qrtclosure/qrt_closure_app/internal/core/ports/repositories"
	"github.com/qrtclosure/qrt_closure_app/internal/models"
	"github.com/qrtclosure/qrt_closure_app/internal/utils/mapping"
	"github.com/qrtclosure/qrt_closure_app/internal/utils/pagination"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for document data.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryWithTx {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

const fullDocumentSelectQuery = `
SELECT
	d.document_id, d.owner_id, d.name, d.kind, d.period, d.line_count,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM documents d
`

// getDocuments runs the shared select with the given filter and ordering.
func (r *PgxDocumentRepository) getDocuments(ctx context.Context, filterQuery string, args ...any) ([]models.Document, error) {
	rows, err := r.Pool.Query(ctx, fullDocumentSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query documents", err)
	}
	defer rows.Close()

	docs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Document])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.Document{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect document rows", err)
	}
	return docs, nil
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	m := mapping.ToModelDocument(document)
	query := `
		INSERT INTO documents (
			document_id, owner_id, name, kind, period, line_count,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentID,
		m.OwnerID,
		m.Name,
		m.Kind,
		m.Period,
		m.LineCount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("document ID " + m.DocumentID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save document "+m.DocumentID, err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	docs, err := r.getDocuments(ctx, `WHERE d.document_id = $1`, documentID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainDocument(docs[0])
	return &d, nil
}

func (r *PgxDocumentRepository) ListDocumentsByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Document, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	filterClause := `WHERE d.owner_id = $1`
	args := []any{ownerID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		filterClause += ` AND (d.created_at, d.document_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastID)
	}

	query := filterClause + ` ORDER BY d.created_at DESC, d.document_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	docs, err := r.getDocuments(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(docs) > limit {
		last := docs[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.DocumentID)
		nextTokenVal = &token
		docs = docs[:limit]
	}

	return mapping.ToDomainDocumentSlice(docs), nextTokenVal, nil
}
