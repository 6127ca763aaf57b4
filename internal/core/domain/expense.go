package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseEntry is a payment out of a Cash or Bank account into an Expense account.
// It is posted to the backend as a Payment transaction.
type ExpenseEntry struct {
	ExpenseAccount string          `json:"expenseAccount"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	ExpenseDate    time.Time       `json:"expenseDate"`
	Description    string          `json:"description"`
	Reference      string          `json:"reference,omitempty"`
	Warehouse      string          `json:"warehouse,omitempty"`
}
