package pgsql

import (
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider assembles the repositories services depend on. dbPool may be nil,
// in which case balance checkpoints are disabled.
func NewRepositoryProvider(dbPool *pgxpool.Pool, backend portsrepo.ERPBackendFacade) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{
		Backend: backend,
	}
	if dbPool != nil {
		provider.CheckpointRepo = NewCheckpointRepository(dbPool)
	}
	return provider
}
