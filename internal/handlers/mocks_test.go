package handlers_test

import (
	"context"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*oauth2.Token, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock entry services ---
type MockEntryServices struct {
	mock.Mock
}

func (m *MockEntryServices) PreviewInvoice(ctx context.Context, form forms.InvoiceForm) (accounting.InvoiceTotals, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(accounting.InvoiceTotals), args.Error(1)
}

func (m *MockEntryServices) SubmitInvoice(ctx context.Context, form forms.InvoiceForm) (*domain.Invoice, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockEntryServices) PreviewSalary(ctx context.Context, form forms.SalaryForm) (*portssvc.SalaryPreview, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SalaryPreview), args.Error(1)
}

func (m *MockEntryServices) SubmitSalary(ctx context.Context, form forms.SalaryForm) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}

func (m *MockEntryServices) PreviewExpense(ctx context.Context, form forms.ExpenseForm) (*domain.AccountPair, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountPair), args.Error(1)
}

func (m *MockEntryServices) SubmitExpense(ctx context.Context, form forms.ExpenseForm) (*domain.Transaction, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockEntryServices) SubmitTransaction(ctx context.Context, form forms.TransactionForm) (*domain.Transaction, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var (
	_ portssvc.ValuationSvc   = (*MockEntryServices)(nil)
	_ portssvc.PayrollSvc     = (*MockEntryServices)(nil)
	_ portssvc.ExpenseSvc     = (*MockEntryServices)(nil)
	_ portssvc.TransactionSvc = (*MockEntryServices)(nil)
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Statement(ctx context.Context, accountID string, query portssvc.StatementQuery) (*portssvc.Statement, error) {
	args := m.Called(ctx, accountID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.Statement), args.Error(1)
}

func (m *MockLedgerService) LatestCheckpoint(ctx context.Context, accountID string) (*domain.BalanceCheckpoint, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockLedgerService) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

var (
	_ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)
	_ portssvc.DashboardSvc    = (*MockLedgerService)(nil)
)
