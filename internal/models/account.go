package models

import (
	"github.com/shopspring/decimal"
)

// Account is an account document as served by GET /api/financial/accounts.
type Account struct {
	ID             string          `json:"_id"`
	AccountName    string          `json:"accountName"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	Category       string          `json:"category"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         string          `json:"status"`
	Warehouse      Ref             `json:"warehouse"`
}

// AccountList is the paged account listing.
type AccountList struct {
	Accounts   []Account `json:"accounts"`
	TotalPages int       `json:"totalPages"`
}

// AccountEnvelope wraps a single account.
type AccountEnvelope struct {
	Account Account `json:"account"`
}
