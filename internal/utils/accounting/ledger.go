package accounting

import (
	"fmt"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Ledger is an account statement. Entries are newest first; balances were accumulated oldest first.
type Ledger struct {
	Account        domain.Account       `json:"account"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
	TotalDebits    decimal.Decimal      `json:"totalDebits"`
	TotalCredits   decimal.Decimal      `json:"totalCredits"`
	Entries        []domain.LedgerEntry `json:"entries"`
	// resumedCount is the number of transactions already folded into the starting balance.
	resumedCount int
}

// ComputeLedger replays transactions in the order given, starting from openingBalance (zero when nil).
// The slice must be the complete, unfiltered history of the account in accumulation order
// (ascending by date, as the backend returns it). Transactions that do not touch the account are skipped.
func ComputeLedger(account domain.Account, openingBalance *decimal.Decimal, transactions []domain.Transaction) (Ledger, error) {
	start := decimal.Zero
	if openingBalance != nil {
		start = *openingBalance
	}
	return accumulate(account, start, 0, transactions)
}

// ResumeLedger continues a ledger from a checkpoint. transactions must start at or before the
// checkpoint's last transaction; everything up to and including it is skipped because it is already
// in the checkpoint balance. A checkpoint whose transaction is missing from the history is stale.
func ResumeLedger(account domain.Account, checkpoint domain.BalanceCheckpoint, transactions []domain.Transaction) (Ledger, error) {
	if checkpoint.AccountID != account.AccountID {
		return Ledger{}, fmt.Errorf("%w: checkpoint belongs to account %s, not %s", apperrors.ErrValidation, checkpoint.AccountID, account.AccountID)
	}
	if checkpoint.LastTransactionID == "" {
		return accumulate(account, checkpoint.Balance, checkpoint.TransactionCount, transactions)
	}
	for i, txn := range transactions {
		if txn.TransactionID == checkpoint.LastTransactionID {
			return accumulate(account, checkpoint.Balance, checkpoint.TransactionCount, transactions[i+1:])
		}
	}
	return Ledger{}, fmt.Errorf("%w: checkpoint transaction %s not found in account history", apperrors.ErrConflict, checkpoint.LastTransactionID)
}

func accumulate(account domain.Account, start decimal.Decimal, resumed int, transactions []domain.Transaction) (Ledger, error) {
	ledger := Ledger{
		Account:        account,
		OpeningBalance: start,
		TotalDebits:    decimal.Zero,
		TotalCredits:   decimal.Zero,
		Entries:        make([]domain.LedgerEntry, 0, len(transactions)),
		resumedCount:   resumed,
	}

	balance := start
	for _, txn := range transactions {
		if !txn.Touches(account.AccountID) {
			continue
		}
		signed, side, err := SignedAmount(txn, account.AccountID)
		if err != nil {
			return Ledger{}, err
		}
		balance = balance.Add(signed)

		counterparty := txn.CreditAccount.Name
		if side == domain.SideDebit {
			ledger.TotalDebits = ledger.TotalDebits.Add(txn.Amount)
		} else {
			ledger.TotalCredits = ledger.TotalCredits.Add(txn.Amount)
			counterparty = txn.DebitAccount.Name
		}

		ledger.Entries = append(ledger.Entries, domain.LedgerEntry{
			TransactionID:   txn.TransactionID,
			TransactionDate: txn.TransactionDate,
			TransactionType: txn.TransactionType,
			Side:            side,
			Amount:          txn.Amount,
			RunningBalance:  balance,
			Counterparty:    counterparty,
			Description:     txn.Description,
			Reference:       txn.Reference,
			PaymentStatus:   txn.PaymentStatus,
		})
	}
	ledger.ClosingBalance = balance

	// Presentation order is newest first; reverse once, after every balance is fixed.
	for i, j := 0, len(ledger.Entries)-1; i < j; i, j = i+1, j-1 {
		ledger.Entries[i], ledger.Entries[j] = ledger.Entries[j], ledger.Entries[i]
	}
	return ledger, nil
}

// Checkpoint captures the balance after the newest entry.
// It returns false for a ledger with no entries, since there is no transaction to anchor it to.
func (l Ledger) Checkpoint(computedAt time.Time) (domain.BalanceCheckpoint, bool) {
	if len(l.Entries) == 0 {
		return domain.BalanceCheckpoint{}, false
	}
	newest := l.Entries[0]
	return domain.BalanceCheckpoint{
		AccountID:         l.Account.AccountID,
		AsOf:              newest.TransactionDate,
		Balance:           l.ClosingBalance,
		LastTransactionID: newest.TransactionID,
		TransactionCount:  l.resumedCount + len(l.Entries),
		ComputedAt:        computedAt,
	}, true
}

// Window keeps the entries dated within [start, end]; zero bounds are open.
// Running balances are left as accumulated over the full history.
func (l Ledger) Window(start, end time.Time) Ledger {
	if start.IsZero() && end.IsZero() {
		return l
	}
	kept := make([]domain.LedgerEntry, 0, len(l.Entries))
	for _, e := range l.Entries {
		if !start.IsZero() && e.TransactionDate.Before(start) {
			continue
		}
		if !end.IsZero() && e.TransactionDate.After(end) {
			continue
		}
		kept = append(kept, e)
	}
	l.Entries = kept
	return l
}

// Page returns the 1-based page of entries and the total number of pages.
// Pages past the end are empty. It never alters balances.
func (l Ledger) Page(page, limit int) ([]domain.LedgerEntry, int) {
	if limit <= 0 {
		limit = len(l.Entries)
	}
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		return []domain.LedgerEntry{}, 0
	}
	totalPages := (len(l.Entries) + limit - 1) / limit
	from := (page - 1) * limit
	if from >= len(l.Entries) {
		return []domain.LedgerEntry{}, totalPages
	}
	to := from + limit
	if to > len(l.Entries) {
		to = len(l.Entries)
	}
	return l.Entries[from:to], totalPages
}
