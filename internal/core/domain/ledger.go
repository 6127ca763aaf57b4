package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide tags which side of a transaction the ledger's account was on.
type EntrySide string

const (
	SideDebit  EntrySide = "debit"
	SideCredit EntrySide = "credit"
)

// LedgerEntry is one transaction as seen from a single account, with the balance after it.
type LedgerEntry struct {
	TransactionID   string          `json:"transactionID"`
	TransactionDate time.Time       `json:"transactionDate"`
	TransactionType TransactionType `json:"transactionType"`
	Side            EntrySide       `json:"side"`
	Amount          decimal.Decimal `json:"amount"`
	RunningBalance  decimal.Decimal `json:"runningBalance"`
	Counterparty    string          `json:"counterparty"` // display only
	Description     string          `json:"description"`
	Reference       string          `json:"reference,omitempty"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus,omitempty"`
}

// BalanceCheckpoint is a pre-computed balance after a known transaction,
// used to resume a running ledger without replaying the full history.
type BalanceCheckpoint struct {
	CheckpointID      string          `json:"checkpointID"`
	AccountID         string          `json:"accountID"`
	AsOf              time.Time       `json:"asOf"`
	Balance           decimal.Decimal `json:"balance"`
	LastTransactionID string          `json:"lastTransactionID"`
	TransactionCount  int             `json:"transactionCount"`
	ComputedAt        time.Time       `json:"computedAt"`
}

// FinancialSummary aggregates current balances for the dashboard.
type FinancialSummary struct {
	TotalsByType map[AccountType]decimal.Decimal `json:"totalsByType"`
	CashInHand   decimal.Decimal                 `json:"cashInHand"`
	BankBalance  decimal.Decimal                 `json:"bankBalance"`
	AccountCount int                             `json:"accountCount"`
	ActiveCount  int                             `json:"activeCount"`
}
