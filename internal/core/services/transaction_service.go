package services

import (
	"context"
	"log/slog"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
)

type transactionService struct {
	BaseService
	backend PostingBackend
}

// NewTransactionService creates the general transaction service.
func NewTransactionService(backend PostingBackend) portssvc.TransactionSvc {
	return &transactionService{backend: backend}
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) SubmitTransaction(ctx context.Context, form forms.TransactionForm) (*domain.Transaction, error) {
	txn, err := form.ToTransaction()
	if err != nil {
		s.LogDebug(ctx, "Transaction form rejected", slog.String("error", err.Error()))
		return nil, err
	}

	accounts, err := fetchAccounts(ctx, s.backend, txn.DebitAccount.AccountID, txn.CreditAccount.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transaction accounts",
			slog.String("debit_account", txn.DebitAccount.AccountID),
			slog.String("credit_account", txn.CreditAccount.AccountID))
		return nil, err
	}
	pair, err := accounting.ValidateTransactionPair(txn.DebitAccount.AccountID, txn.CreditAccount.AccountID, txn.Amount, accounts)
	if err != nil {
		return nil, err
	}
	txn.DebitAccount.Name = pair.DebitAccount.Name
	txn.CreditAccount.Name = pair.CreditAccount.Name

	created, err := s.backend.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to post transaction",
			slog.String("type", string(txn.TransactionType)),
			slog.String("amount", txn.Amount.StringFixed(2)))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", created.TransactionID),
		slog.String("type", string(created.TransactionType)),
		slog.String("debit_account", created.DebitAccount.AccountID),
		slog.String("credit_account", created.CreditAccount.AccountID),
		slog.String("amount", created.Amount.StringFixed(2)))
	return created, nil
}
