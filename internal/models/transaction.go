package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a transaction document with populated debit and credit accounts,
// as served by the account ledger endpoint.
type Transaction struct {
	ID              string          `json:"_id"`
	TransactionType string          `json:"transactionType"`
	DebitAccount    Ref             `json:"debitAccount"`
	CreditAccount   Ref             `json:"creditAccount"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	Currency        string          `json:"currency"`
	Warehouse       Ref             `json:"warehouse"`
}

// Pagination is the paging block of list responses.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Total       int `json:"total"`
}

// LedgerPage is one page of GET /api/financial/accounts/:id/ledger.
type LedgerPage struct {
	Transactions []Transaction `json:"transactions"`
	Pagination   Pagination    `json:"pagination"`
}

// TransactionRequest is the body of POST /api/financial/transactions.
type TransactionRequest struct {
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	DebitAccount    string          `json:"debitAccount"`
	CreditAccount   string          `json:"creditAccount"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	Currency        string          `json:"currency"`
	Warehouse       string          `json:"warehouse,omitempty"`
	Reference       string          `json:"reference,omitempty"`
}

// TransactionEnvelope is the response of a successful transaction post.
type TransactionEnvelope struct {
	Message     string      `json:"message"`
	Transaction Transaction `json:"transaction"`
}
