package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	"github.com/flourmill/mill_ledger/internal/models"
	"github.com/flourmill/mill_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkpointColumns = `checkpoint_id, account_id, as_of, balance, last_transaction_id, transaction_count, computed_at`

type PgxCheckpointRepository struct {
	BaseRepository
}

// NewCheckpointRepository creates a new repository for balance checkpoints.
func NewCheckpointRepository(pool *pgxpool.Pool) portsrepo.CheckpointRepositoryWithTx {
	return &PgxCheckpointRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CheckpointRepositoryWithTx = (*PgxCheckpointRepository)(nil)

// SaveCheckpoint inserts a checkpoint and prunes older ones of the same account, keeping the newest keep rows.
// Saving a checkpoint id twice overwrites the earlier row.
func (r *PgxCheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint, keep int) error {
	m := mapping.ToModelCheckpoint(checkpoint)

	insert := `
		INSERT INTO balance_checkpoints (` + checkpointColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (checkpoint_id) DO UPDATE SET
			as_of = EXCLUDED.as_of,
			balance = EXCLUDED.balance,
			last_transaction_id = EXCLUDED.last_transaction_id,
			transaction_count = EXCLUDED.transaction_count,
			computed_at = EXCLUDED.computed_at;
	`
	prune := `
		DELETE FROM balance_checkpoints
		WHERE account_id = $1
		  AND checkpoint_id NOT IN (
			SELECT checkpoint_id FROM balance_checkpoints
			WHERE account_id = $1
			ORDER BY computed_at DESC, checkpoint_id DESC
			LIMIT $2
		  );
	`

	return r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insert,
			m.CheckpointID,
			m.AccountID,
			m.AsOf,
			m.Balance,
			m.LastTransactionID,
			m.TransactionCount,
			m.ComputedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save checkpoint %s: %w", m.CheckpointID, err)
		}
		if keep > 0 {
			if _, err := tx.Exec(ctx, prune, m.AccountID, keep); err != nil {
				return fmt.Errorf("failed to prune checkpoints of account %s: %w", m.AccountID, err)
			}
		}
		return nil
	})
}

// FindLatestCheckpoint returns the most recently computed checkpoint of an account.
func (r *PgxCheckpointRepository) FindLatestCheckpoint(ctx context.Context, accountID string) (*domain.BalanceCheckpoint, error) {
	query := `
		SELECT ` + checkpointColumns + `
		FROM balance_checkpoints
		WHERE account_id = $1
		ORDER BY computed_at DESC, checkpoint_id DESC
		LIMIT 1;
	`
	return r.findOne(ctx, query, accountID)
}

// FindCheckpointByID retrieves a checkpoint by its identifier.
func (r *PgxCheckpointRepository) FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error) {
	query := `
		SELECT ` + checkpointColumns + `
		FROM balance_checkpoints
		WHERE checkpoint_id = $1;
	`
	return r.findOne(ctx, query, checkpointID)
}

// DeleteCheckpoints removes every checkpoint of an account.
func (r *PgxCheckpointRepository) DeleteCheckpoints(ctx context.Context, accountID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM balance_checkpoints WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete checkpoints of account %s: %w", accountID, err)
	}
	return nil
}

func (r *PgxCheckpointRepository) findOne(ctx context.Context, query string, arg string) (*domain.BalanceCheckpoint, error) {
	var m models.BalanceCheckpoint
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.CheckpointID,
		&m.AccountID,
		&m.AsOf,
		&m.Balance,
		&m.LastTransactionID,
		&m.TransactionCount,
		&m.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find checkpoint %s: %w", arg, err)
	}

	d := mapping.ToDomainCheckpoint(m)
	return &d, nil
}
