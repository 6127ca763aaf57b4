package repositories

import (
	"context"

	"github.com/flourmill/mill_ledger/internal/core/domain"
)

// CheckpointReader defines read operations for balance checkpoints
type CheckpointReader interface {
	// FindLatestCheckpoint returns the most recent checkpoint of an account, or ErrNotFound.
	FindLatestCheckpoint(ctx context.Context, accountID string) (*domain.BalanceCheckpoint, error)

	// FindCheckpointByID retrieves a checkpoint by its identifier, or ErrNotFound.
	FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error)
}

// CheckpointWriter defines write operations for balance checkpoints
type CheckpointWriter interface {
	// SaveCheckpoint stores a checkpoint and prunes all but the newest keep checkpoints of the account.
	SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint, keep int) error

	// DeleteCheckpoints removes every checkpoint of an account, e.g. after a conflict.
	DeleteCheckpoints(ctx context.Context, accountID string) error
}

// CheckpointRepositoryFacade combines all checkpoint repository interfaces
type CheckpointRepositoryFacade interface {
	CheckpointReader
	CheckpointWriter
}

// CheckpointRepositoryWithTx extends CheckpointRepositoryFacade with transaction capabilities
type CheckpointRepositoryWithTx interface {
	CheckpointRepositoryFacade
	TransactionManager
}
