package pgsql

import (
	portsrepo "github.com/qrtclosure/qrt_closure_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo: newPgxDocumentRepository(dbPool),
		LineRepo:     newPgxTransactionLineRepository(dbPool),
	}
}
