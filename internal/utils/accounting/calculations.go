package accounting

import (
	"fmt"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the effect of txn on the balance of accountID and the side the account is on.
//
// Every account is treated alike: the debit side gains +amount and the credit side loses amount,
// whatever its account type. This differs from textbook double-entry for liability, equity and
// revenue accounts; it mirrors how the ERP backend reconstructs ledgers and is kept as is so
// balances round-trip with the backend.
func SignedAmount(txn domain.Transaction, accountID string) (decimal.Decimal, domain.EntrySide, error) {
	isDebit := txn.DebitAccount.AccountID == accountID
	isCredit := txn.CreditAccount.AccountID == accountID

	switch {
	case isDebit && isCredit:
		return decimal.Zero, "", fmt.Errorf("%w: transaction %s debits and credits the same account %s",
			apperrors.ErrValidation, txn.TransactionID, accountID)
	case isDebit:
		return txn.Amount, domain.SideDebit, nil
	case isCredit:
		return txn.Amount.Neg(), domain.SideCredit, nil
	default:
		return decimal.Zero, "", fmt.Errorf("%w: transaction %s does not reference account %s",
			apperrors.ErrValidation, txn.TransactionID, accountID)
	}
}

// ValidateTransactionPair checks the invariants every posted transaction must satisfy:
// two known, distinct accounts and a strictly positive amount.
func ValidateTransactionPair(debitAccountID, creditAccountID string, amount decimal.Decimal, accounts []domain.Account) (domain.AccountPair, error) {
	errs := apperrors.FieldErrors{}
	if debitAccountID == "" {
		errs.Add("debitAccount", "debit account is required")
	}
	if creditAccountID == "" {
		errs.Add("creditAccount", "credit account is required")
	}
	if debitAccountID != "" && debitAccountID == creditAccountID {
		errs.Add("creditAccount", "debit and credit accounts must differ")
	}
	if !amount.IsPositive() {
		errs.Add("amount", "amount must be greater than zero")
	}
	if err := errs.OrNil(); err != nil {
		return domain.AccountPair{}, err
	}

	debit, ok := findAccount(accounts, debitAccountID)
	if !ok {
		return domain.AccountPair{}, fmt.Errorf("%w: debit account %s not found", apperrors.ErrNoMatchingAccount, debitAccountID)
	}
	credit, ok := findAccount(accounts, creditAccountID)
	if !ok {
		return domain.AccountPair{}, fmt.Errorf("%w: credit account %s not found", apperrors.ErrNoMatchingAccount, creditAccountID)
	}
	return domain.AccountPair{DebitAccount: debit, CreditAccount: credit}, nil
}

func findAccount(accounts []domain.Account, accountID string) (domain.Account, bool) {
	for _, acc := range accounts {
		if acc.AccountID == accountID {
			return acc, true
		}
	}
	return domain.Account{}, false
}
