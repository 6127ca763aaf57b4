package services

import (
	"context"
	"log/slog"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// PostingBackend is what services that post transactions need from the ERP backend.
type PostingBackend interface {
	portsrepo.AccountReader
	portsrepo.TransactionWriter
}

type expenseService struct {
	BaseService
	backend  PostingBackend
	currency string
}

// NewExpenseService creates the expense service. currency is stamped on every posted payment.
func NewExpenseService(backend PostingBackend, currency string) portssvc.ExpenseSvc {
	return &expenseService{backend: backend, currency: currency}
}

var _ portssvc.ExpenseSvc = (*expenseService)(nil)

func (s *expenseService) PreviewExpense(ctx context.Context, form forms.ExpenseForm) (*domain.AccountPair, error) {
	expense, err := form.ToExpense()
	if err != nil {
		return nil, err
	}
	pair, err := s.buildPair(ctx, expense)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// SubmitExpense posts the expense as a completed Payment from the matching Cash or Bank account.
func (s *expenseService) SubmitExpense(ctx context.Context, form forms.ExpenseForm) (*domain.Transaction, error) {
	expense, err := form.ToExpense()
	if err != nil {
		s.LogDebug(ctx, "Expense form rejected", slog.String("error", err.Error()))
		return nil, err
	}
	pair, err := s.buildPair(ctx, expense)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionType: domain.Payment,
		DebitAccount:    domain.AccountRef{AccountID: pair.DebitAccount.AccountID, Name: pair.DebitAccount.Name},
		CreditAccount:   domain.AccountRef{AccountID: pair.CreditAccount.AccountID, Name: pair.CreditAccount.Name},
		Amount:          expense.Amount,
		TransactionDate: expense.ExpenseDate,
		PaymentMethod:   expense.PaymentMethod,
		PaymentStatus:   domain.StatusCompleted,
		Description:     expense.Description,
		Reference:       expense.Reference,
		Warehouse:       expense.Warehouse,
		Currency:        s.currency,
	}
	created, err := s.backend.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to post expense",
			slog.String("expense_account", pair.DebitAccount.AccountID),
			slog.String("source_account", pair.CreditAccount.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense posted",
		slog.String("transaction_id", created.TransactionID),
		slog.String("expense_account", pair.DebitAccount.AccountID),
		slog.String("source_account", pair.CreditAccount.AccountID),
		slog.String("amount", created.Amount.StringFixed(2)))
	return created, nil
}

// buildPair loads the chosen expense account and the candidate source accounts side by side.
func (s *expenseService) buildPair(ctx context.Context, expense domain.ExpenseEntry) (domain.AccountPair, error) {
	category, err := accounting.SourceCategory(expense.PaymentMethod)
	if err != nil {
		return domain.AccountPair{}, err
	}

	var expenseAccounts, sources []domain.Account
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenseAccounts, err = fetchAccounts(gctx, s.backend, expense.ExpenseAccount)
		return err
	})
	g.Go(func() error {
		var err error
		sources, err = s.backend.ListAllAccounts(gctx, domain.AccountQuery{AccountType: domain.Asset, Category: category})
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load expense accounts", slog.String("expense_account", expense.ExpenseAccount))
		return domain.AccountPair{}, err
	}

	pair, err := accounting.BuildExpenseTransaction(expense.ExpenseAccount, expense.Amount, expense.PaymentMethod, append(expenseAccounts, sources...))
	if err != nil {
		s.LogDebug(ctx, "Expense accounts rejected", slog.String("error", err.Error()))
		return domain.AccountPair{}, err
	}
	return pair, nil
}
