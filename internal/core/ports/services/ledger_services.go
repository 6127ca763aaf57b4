package services

import (
	"context"
	"time"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// StatementQuery selects the displayed part of a ledger. Filters never affect balances.
type StatementQuery struct {
	Page      int
	Limit     int
	StartDate time.Time
	EndDate   time.Time
	// Resume continues from the latest stored checkpoint instead of replaying the full history.
	Resume bool
	// CheckpointToken resumes from a specific checkpoint handed out with an earlier statement.
	CheckpointToken string
}

// Statement is a computed account ledger ready for display.
type Statement struct {
	Account         domain.Account
	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	TotalDebits     decimal.Decimal
	TotalCredits    decimal.Decimal
	Entries         []domain.LedgerEntry
	Page            int
	TotalPages      int
	TotalEntries    int
	Reconciliation  accounting.Reconciliation
	Checkpoint      *domain.BalanceCheckpoint
	CheckpointToken string
	Resumed         bool
}

// LedgerReaderSvc builds account statements.
type LedgerReaderSvc interface {
	Statement(ctx context.Context, accountID string, query StatementQuery) (*Statement, error)
}

// CheckpointSvc exposes stored checkpoints.
type CheckpointSvc interface {
	LatestCheckpoint(ctx context.Context, accountID string) (*domain.BalanceCheckpoint, error)
}

// LedgerSvcFacade combines the ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	CheckpointSvc
}

// DashboardSvc aggregates account balances.
type DashboardSvc interface {
	Summary(ctx context.Context) (*domain.FinancialSummary, error)
}
