package domain

import "time"

// AccountQuery filters the backend account listing. Zero values mean "no filter".
type AccountQuery struct {
	Page        int
	Limit       int
	Search      string
	AccountType AccountType
	Category    AccountCategory
}

// LedgerQuery selects a page of an account's transaction history.
// Zero dates are open bounds.
type LedgerQuery struct {
	Page      int
	Limit     int
	StartDate time.Time
	EndDate   time.Time
}
