package domain

import (
	"fmt"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Revenue   AccountType = "Revenue"
	Expense   AccountType = "Expense"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// AccountCategory is the sub-classification of an account (Cash, Bank, ...).
type AccountCategory string

const (
	CategoryCash               AccountCategory = "Cash"
	CategoryBank               AccountCategory = "Bank"
	CategoryAccountsReceivable AccountCategory = "Accounts Receivable"
	CategoryInventory          AccountCategory = "Inventory"
	CategoryFixedAsset         AccountCategory = "Fixed Asset"
	CategoryAccountsPayable    AccountCategory = "Accounts Payable"
	CategoryLoan               AccountCategory = "Loan"
	CategoryCapital            AccountCategory = "Capital"
	CategoryRetainedEarnings   AccountCategory = "Retained Earnings"
	CategorySales              AccountCategory = "Sales"
	CategoryOtherIncome        AccountCategory = "Other Income"
	CategorySalary             AccountCategory = "Salary"
	CategoryUtilities          AccountCategory = "Utilities"
	CategoryPurchase           AccountCategory = "Purchase"
	CategoryRent               AccountCategory = "Rent"
	CategoryOtherExpense       AccountCategory = "Other Expense"
)

// categoryTypes pins the categories whose account type is fixed.
// Categories not listed here are accepted for any type; the backend owns the master list.
var categoryTypes = map[AccountCategory]AccountType{
	CategoryCash:               Asset,
	CategoryBank:               Asset,
	CategoryAccountsReceivable: Asset,
	CategoryInventory:          Asset,
	CategoryFixedAsset:         Asset,
	CategoryAccountsPayable:    Liability,
	CategoryLoan:               Liability,
	CategoryCapital:            Equity,
	CategoryRetainedEarnings:   Equity,
	CategorySales:              Revenue,
	CategoryOtherIncome:        Revenue,
	CategorySalary:             Expense,
	CategoryUtilities:          Expense,
	CategoryPurchase:           Expense,
	CategoryRent:               Expense,
	CategoryOtherExpense:       Expense,
}

// ConsistentWith reports whether category c may be used with account type t.
func (c AccountCategory) ConsistentWith(t AccountType) bool {
	want, pinned := categoryTypes[c]
	return !pinned || want == t
}

// AccountStatus is the lifecycle status of an account. Accounts are soft-deactivated, never hard-deleted.
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

// Account represents a financial account as held by the ERP backend.
// The gateway only ever holds transient copies; CurrentBalance is authoritative on the backend.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    AccountType     `json:"accountType"`
	Category       AccountCategory `json:"category"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Status         AccountStatus   `json:"status"`
	Warehouse      string          `json:"warehouse,omitempty"`
}

// IsActive reports whether the account may take part in new transactions.
func (a Account) IsActive() bool {
	return a.Status == "" || a.Status == AccountActive
}

// Validate checks that the account can take part in a posting: a known type, and a category
// that does not contradict it.
func (a Account) Validate() error {
	if !a.AccountType.Valid() {
		return fmt.Errorf("%w: account %s has unknown type '%s'", apperrors.ErrInvalidAccountType, a.AccountID, a.AccountType)
	}
	if !a.Category.ConsistentWith(a.AccountType) {
		return fmt.Errorf("%w: account %s has category '%s', which is not allowed for %s accounts",
			apperrors.ErrInvalidAccountType, a.AccountID, a.Category, a.AccountType)
	}
	return nil
}
