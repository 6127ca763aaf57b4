package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the business event behind a transaction.
type TransactionType string

const (
	Payment    TransactionType = "Payment"
	Receipt    TransactionType = "Receipt"
	Purchase   TransactionType = "Purchase"
	Sale       TransactionType = "Sale"
	Salary     TransactionType = "Salary"
	Transfer   TransactionType = "Transfer"
	Adjustment TransactionType = "Adjustment"
	Other      TransactionType = "Other"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case Payment, Receipt, Purchase, Sale, Salary, Transfer, Adjustment, Other:
		return true
	}
	return false
}

// PaymentMethod is how money moved for a transaction.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCheque       PaymentMethod = "Cheque"
	MethodOnline       PaymentMethod = "Online"
	MethodOther        PaymentMethod = "Other"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheque, MethodOnline, MethodOther:
		return true
	}
	return false
}

// PaymentStatus is the settlement status of a transaction or salary.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "Pending"
	StatusCompleted PaymentStatus = "Completed"
	StatusFailed    PaymentStatus = "Failed"
	StatusCancelled PaymentStatus = "Cancelled"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// AccountRef is a reference to an account as populated by the backend ledger endpoint.
type AccountRef struct {
	AccountID string `json:"accountID"`
	Name      string `json:"name"`
}

// Transaction affects exactly one debit and one credit account.
// The amount is applied as +Amount to the debit account and -Amount to the credit account.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	TransactionType TransactionType `json:"transactionType"`
	DebitAccount    AccountRef      `json:"debitAccount"`
	CreditAccount   AccountRef      `json:"creditAccount"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference,omitempty"`
	Warehouse       string          `json:"warehouse,omitempty"`
	Currency        string          `json:"currency,omitempty"`
}

// Touches reports whether the transaction references accountID on either side.
func (t Transaction) Touches(accountID string) bool {
	return t.DebitAccount.AccountID == accountID || t.CreditAccount.AccountID == accountID
}

// AccountPair is the debit/credit selection produced by the transaction builders.
type AccountPair struct {
	DebitAccount  Account `json:"debitAccount"`
	CreditAccount Account `json:"creditAccount"`
}
