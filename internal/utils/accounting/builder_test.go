package accounting_test

import (
	"testing"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartOfAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "rent", Name: "Rent Expense", AccountType: domain.Expense, Category: domain.CategoryRent, Status: domain.AccountActive},
		{AccountID: "sales", Name: "Flour Sales", AccountType: domain.Revenue, Category: domain.CategorySales, Status: domain.AccountActive},
		{AccountID: "old-cash", Name: "Old Till", AccountType: domain.Asset, Category: domain.CategoryCash, Status: domain.AccountInactive},
		{AccountID: "cash", Name: "Cash in Hand", AccountType: domain.Asset, Category: domain.CategoryCash, Status: domain.AccountActive},
		{AccountID: "bank", Name: "HBL Current", AccountType: domain.Asset, Category: domain.CategoryBank, Status: domain.AccountActive},
		{AccountID: "salary", Name: "Salaries", AccountType: domain.Expense, Category: domain.CategorySalary, Status: domain.AccountActive},
	}
}

func TestBuildExpenseTransaction(t *testing.T) {
	pair, err := accounting.BuildExpenseTransaction("rent", dec("5000"), domain.MethodCash, chartOfAccounts())
	require.NoError(t, err)
	assert.Equal(t, "rent", pair.DebitAccount.AccountID)
	assert.Equal(t, "cash", pair.CreditAccount.AccountID, "inactive cash account must be skipped")

	pair, err = accounting.BuildExpenseTransaction("rent", dec("5000"), domain.MethodBankTransfer, chartOfAccounts())
	require.NoError(t, err)
	assert.Equal(t, "bank", pair.CreditAccount.AccountID)
}

func TestBuildExpenseTransaction_Errors(t *testing.T) {
	noCash := []domain.Account{
		{AccountID: "rent", AccountType: domain.Expense, Category: domain.CategoryRent},
		{AccountID: "bank", AccountType: domain.Asset, Category: domain.CategoryBank},
	}
	noBank := []domain.Account{
		{AccountID: "rent", AccountType: domain.Expense, Category: domain.CategoryRent},
		{AccountID: "cash", AccountType: domain.Asset, Category: domain.CategoryCash},
		{AccountID: "receivable", AccountType: domain.Asset, Category: domain.CategoryAccountsReceivable},
	}
	tests := []struct {
		name      string
		expenseID string
		amount    string
		method    domain.PaymentMethod
		accounts  []domain.Account
		wantErr   error
	}{
		{name: "no cash account for cash payment", expenseID: "rent", amount: "10", method: domain.MethodCash, accounts: noCash, wantErr: apperrors.ErrNoMatchingAccount},
		{name: "no bank account never falls back to another asset", expenseID: "rent", amount: "10", method: domain.MethodBankTransfer, accounts: noBank, wantErr: apperrors.ErrNoMatchingAccount},
		{name: "non-expense chosen as expense", expenseID: "sales", amount: "10", method: domain.MethodCash, accounts: chartOfAccounts(), wantErr: apperrors.ErrInvalidAccountType},
		{name: "unknown expense account", expenseID: "ghost", amount: "10", method: domain.MethodCash, accounts: chartOfAccounts(), wantErr: apperrors.ErrNoMatchingAccount},
		{name: "zero amount", expenseID: "rent", amount: "0", method: domain.MethodCash, accounts: chartOfAccounts(), wantErr: apperrors.ErrValidation},
		{name: "method without source account", expenseID: "rent", amount: "10", method: domain.MethodCheque, accounts: chartOfAccounts(), wantErr: apperrors.ErrValidation},
		{name: "empty account set", expenseID: "rent", amount: "10", method: domain.MethodCash, accounts: nil, wantErr: apperrors.ErrNoMatchingAccount},
		{name: "expense account filed under an asset category", expenseID: "misfiled", amount: "10", method: domain.MethodCash,
			accounts: append(chartOfAccounts(), domain.Account{AccountID: "misfiled", AccountType: domain.Expense, Category: domain.CategoryBank}),
			wantErr: apperrors.ErrInvalidAccountType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accounting.BuildExpenseTransaction(tt.expenseID, dec(tt.amount), tt.method, tt.accounts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuildExpenseTransaction_MessageNamesCategory(t *testing.T) {
	accounts := []domain.Account{{AccountID: "rent", AccountType: domain.Expense}}
	_, err := accounting.BuildExpenseTransaction("rent", dec("1"), domain.MethodBankTransfer, accounts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bank")
}

func TestBuildSalaryTransaction(t *testing.T) {
	pair, err := accounting.BuildSalaryTransaction("salary", "cash", chartOfAccounts())
	require.NoError(t, err)
	assert.Equal(t, "salary", pair.DebitAccount.AccountID)
	assert.Equal(t, "cash", pair.CreditAccount.AccountID)

	_, err = accounting.BuildSalaryTransaction("cash", "cash", chartOfAccounts())
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccountType)

	_, err = accounting.BuildSalaryTransaction("salary", "rent", chartOfAccounts())
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccountType)

	_, err = accounting.BuildSalaryTransaction("salary", "missing", chartOfAccounts())
	assert.ErrorIs(t, err, apperrors.ErrNoMatchingAccount)

	misfiled := append(chartOfAccounts(), domain.Account{AccountID: "wages", AccountType: domain.Expense, Category: domain.CategorySales})
	_, err = accounting.BuildSalaryTransaction("wages", "cash", misfiled)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccountType)
}

func TestValidateTransactionPair(t *testing.T) {
	pair, err := accounting.ValidateTransactionPair("cash", "sales", dec("100"), chartOfAccounts())
	require.NoError(t, err)
	assert.Equal(t, "Cash in Hand", pair.DebitAccount.Name)
	assert.Equal(t, "Flour Sales", pair.CreditAccount.Name)

	_, err = accounting.ValidateTransactionPair("cash", "cash", dec("100"), chartOfAccounts())
	var fe apperrors.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "creditAccount")

	_, err = accounting.ValidateTransactionPair("cash", "sales", dec("-1"), chartOfAccounts())
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = accounting.ValidateTransactionPair("cash", "nowhere", dec("1"), chartOfAccounts())
	assert.ErrorIs(t, err, apperrors.ErrNoMatchingAccount)
}
