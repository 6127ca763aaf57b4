package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceCheckpoint is a row of the balance_checkpoints table.
type BalanceCheckpoint struct {
	CheckpointID      string          `db:"checkpoint_id"`
	AccountID         string          `db:"account_id"`
	AsOf              time.Time       `db:"as_of"`
	Balance           decimal.Decimal `db:"balance"`
	LastTransactionID string          `db:"last_transaction_id"`
	TransactionCount  int             `db:"transaction_count"`
	ComputedAt        time.Time       `db:"computed_at"`
}
