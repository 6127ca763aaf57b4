package repositories

import (
	"context"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"golang.org/x/oauth2"
)

// The ERP backend is the system of record. These ports describe what the gateway needs from it;
// every call authenticates with the bearer token carried in ctx.

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*oauth2.Token, error)
}

// AccountReader defines read operations for backend accounts
type AccountReader interface {
	// ListAccounts returns one page of accounts and the total page count.
	ListAccounts(ctx context.Context, query domain.AccountQuery) ([]domain.Account, int, error)

	// ListAllAccounts walks every page of the listing.
	ListAllAccounts(ctx context.Context, query domain.AccountQuery) ([]domain.Account, error)

	// GetAccount retrieves a single account with its authoritative current balance.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

// LedgerReader defines read operations for account transaction history
type LedgerReader interface {
	// GetAccountLedger returns one page of an account's transactions in backend order and the total page count.
	GetAccountLedger(ctx context.Context, accountID string, query domain.LedgerQuery) ([]domain.Transaction, int, error)

	// GetFullLedger returns every transaction of the account, pages stitched in order.
	GetFullLedger(ctx context.Context, accountID string, query domain.LedgerQuery) ([]domain.Transaction, error)
}

// TransactionWriter posts transactions.
type TransactionWriter interface {
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// SalaryWriter posts salary records.
type SalaryWriter interface {
	CreateSalary(ctx context.Context, record domain.SalaryRecord) (*domain.SalaryRecord, error)
}

// InvoiceWriter posts purchase invoices.
type InvoiceWriter interface {
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
}

// ERPBackendFacade combines all backend ports
type ERPBackendFacade interface {
	Authenticator
	AccountReader
	LedgerReader
	TransactionWriter
	SalaryWriter
	InvoiceWriter
}
