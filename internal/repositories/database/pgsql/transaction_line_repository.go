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
)

type PgxTransactionLineRepository struct {
	BaseRepository
}

// newPgxTransactionLineRepository creates a new repository for extracted lines.
func newPgxTransactionLineRepository(pool *pgxpool.Pool) portsrepo.TransactionLineRepositoryWithTx {
	return &PgxTransactionLineRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionLineRepositoryWithTx = (*PgxTransactionLineRepository)(nil)

func (r *PgxTransactionLineRepository) ListLinesByDocument(ctx context.Context, documentID string) ([]domain.TransactionLine, error) {
	query := `
		SELECT document_id, line_id, position, company, particulars, transaction_date,
		       voucher_number, voucher_type, net_amount
		FROM transaction_lines
		WHERE document_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for document "+documentID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TransactionLine])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.TransactionLine{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect line rows for document "+documentID, err)
	}
	return mapping.ToDomainTransactionLineSlice(lines), nil
}

func (r *PgxTransactionLineRepository) AppendLines(ctx context.Context, documentID string, lines []domain.TransactionLine, userID string) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed

	// Row lock keeps positions dense under concurrent appends.
	var lineCount int
	err = tx.QueryRow(ctx, `SELECT line_count FROM documents WHERE document_id = $1 FOR UPDATE;`, documentID).Scan(&lineCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("document " + documentID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock document "+documentID, err)
	}

	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO transaction_lines (
			document_id, line_id, position, company, particulars, transaction_date,
			voucher_number, voucher_type, net_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for i, l := range lines {
		m := mapping.ToModelTransactionLine(documentID, lineCount+i, l)
		batch.Queue(insertQuery,
			m.DocumentID,
			m.LineID,
			m.Position,
			m.Company,
			m.Particulars,
			m.TransactionDate,
			m.VoucherNumber,
			m.VoucherType,
			m.NetAmount,
		)
	}
	batch.Queue(`
		UPDATE documents
		SET line_count = line_count + $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE document_id = $3;
	`, len(lines), userID, documentID)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (document_id, line_id)
			return apperrors.NewConflictError("line ID already exists in document " + documentID + ": " + pgErr.Detail)
		}
		return apperrors.NewAppError(500, "failed to insert "+strconv.Itoa(len(lines))+" lines for document "+documentID, err)
	}

	return r.Commit(ctx, tx)
}
