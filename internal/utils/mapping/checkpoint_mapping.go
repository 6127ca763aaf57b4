package mapping

import (
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/models"
)

// ToModelCheckpoint converts a domain checkpoint to its table row.
func ToModelCheckpoint(d domain.BalanceCheckpoint) models.BalanceCheckpoint {
	return models.BalanceCheckpoint{
		CheckpointID:      d.CheckpointID,
		AccountID:         d.AccountID,
		AsOf:              d.AsOf,
		Balance:           d.Balance,
		LastTransactionID: d.LastTransactionID,
		TransactionCount:  d.TransactionCount,
		ComputedAt:        d.ComputedAt,
	}
}

// ToDomainCheckpoint converts a table row to a domain checkpoint.
func ToDomainCheckpoint(m models.BalanceCheckpoint) domain.BalanceCheckpoint {
	return domain.BalanceCheckpoint{
		CheckpointID:      m.CheckpointID,
		AccountID:         m.AccountID,
		AsOf:              m.AsOf,
		Balance:           m.Balance,
		LastTransactionID: m.LastTransactionID,
		TransactionCount:  m.TransactionCount,
		ComputedAt:        m.ComputedAt,
	}
}
