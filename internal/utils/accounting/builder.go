package accounting

import (
	"fmt"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SourceCategory returns the Asset category that funds a payment made with method.
func SourceCategory(method domain.PaymentMethod) (domain.AccountCategory, error) {
	switch method {
	case domain.MethodCash:
		return domain.CategoryCash, nil
	case domain.MethodBankTransfer:
		return domain.CategoryBank, nil
	default:
		return "", fmt.Errorf("%w: payment method '%s' has no payment-source account", apperrors.ErrValidation, method)
	}
}

// FindSourceAccount scans accounts for the first active Asset account in category.
func FindSourceAccount(accounts []domain.Account, category domain.AccountCategory) (domain.Account, error) {
	for _, acc := range accounts {
		if acc.AccountType == domain.Asset && acc.Category == category && acc.IsActive() {
			return acc, nil
		}
	}
	return domain.Account{}, fmt.Errorf("%w: no active %s account of type %s exists", apperrors.ErrNoMatchingAccount, category, domain.Asset)
}

// BuildExpenseTransaction picks the debit/credit pair of an expense payment.
// The debit is the chosen Expense account; the credit is the Asset account whose category
// matches the payment method (Cash -> Cash, Bank Transfer -> Bank). It has no side effects.
func BuildExpenseTransaction(expenseAccountID string, amount decimal.Decimal, method domain.PaymentMethod, accounts []domain.Account) (domain.AccountPair, error) {
	if !amount.IsPositive() {
		return domain.AccountPair{}, apperrors.NewFieldError("amount", "amount must be greater than zero")
	}
	category, err := SourceCategory(method)
	if err != nil {
		return domain.AccountPair{}, err
	}

	expense, ok := findAccount(accounts, expenseAccountID)
	if !ok {
		return domain.AccountPair{}, fmt.Errorf("%w: expense account %s not found", apperrors.ErrNoMatchingAccount, expenseAccountID)
	}
	if expense.AccountType != domain.Expense {
		return domain.AccountPair{}, fmt.Errorf("%w: account %s is %s, expected %s",
			apperrors.ErrInvalidAccountType, expense.AccountID, expense.AccountType, domain.Expense)
	}
	if err := expense.Validate(); err != nil {
		return domain.AccountPair{}, err
	}

	source, err := FindSourceAccount(accounts, category)
	if err != nil {
		return domain.AccountPair{}, err
	}
	return domain.AccountPair{DebitAccount: expense, CreditAccount: source}, nil
}

// BuildSalaryTransaction resolves the salary (Expense) and cash (Asset) accounts of a salary payment.
func BuildSalaryTransaction(salaryAccountID, cashAccountID string, accounts []domain.Account) (domain.AccountPair, error) {
	salary, err := resolveRole(accounts, salaryAccountID, domain.Expense, "salary")
	if err != nil {
		return domain.AccountPair{}, err
	}
	cash, err := resolveRole(accounts, cashAccountID, domain.Asset, "cash")
	if err != nil {
		return domain.AccountPair{}, err
	}
	return domain.AccountPair{DebitAccount: salary, CreditAccount: cash}, nil
}

func resolveRole(accounts []domain.Account, accountID string, want domain.AccountType, role string) (domain.Account, error) {
	acc, ok := findAccount(accounts, accountID)
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: %s account %s not found", apperrors.ErrNoMatchingAccount, role, accountID)
	}
	if acc.AccountType != want {
		return domain.Account{}, fmt.Errorf("%w: %s account %s is %s, expected %s",
			apperrors.ErrInvalidAccountType, role, acc.AccountID, acc.AccountType, want)
	}
	if err := acc.Validate(); err != nil {
		return domain.Account{}, err
	}
	return acc, nil
}
