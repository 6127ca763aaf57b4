package services_test

import (
	"context"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

// MockBackend is a mock type for the ERPBackendFacade interface
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Login(ctx context.Context, email, password string) (*oauth2.Token, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockBackend) ListAccounts(ctx context.Context, query domain.AccountQuery) ([]domain.Account, int, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Int(1), args.Error(2)
}

func (m *MockBackend) ListAllAccounts(ctx context.Context, query domain.AccountQuery) ([]domain.Account, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockBackend) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBackend) GetAccountLedger(ctx context.Context, accountID string, query domain.LedgerQuery) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, accountID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

func (m *MockBackend) GetFullLedger(ctx context.Context, accountID string, query domain.LedgerQuery) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBackend) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBackend) CreateSalary(ctx context.Context, record domain.SalaryRecord) (*domain.SalaryRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalaryRecord), args.Error(1)
}

func (m *MockBackend) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// MockCheckpointRepository is a mock type for the CheckpointRepositoryFacade interface
type MockCheckpointRepository struct {
	mock.Mock
}

func (m *MockCheckpointRepository) FindLatestCheckpoint(ctx context.Context, accountID string) (*domain.BalanceCheckpoint, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointRepository) FindCheckpointByID(ctx context.Context, checkpointID string) (*domain.BalanceCheckpoint, error) {
	args := m.Called(ctx, checkpointID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceCheckpoint), args.Error(1)
}

func (m *MockCheckpointRepository) SaveCheckpoint(ctx context.Context, checkpoint domain.BalanceCheckpoint, keep int) error {
	args := m.Called(ctx, checkpoint, keep)
	return args.Error(0)
}

func (m *MockCheckpointRepository) DeleteCheckpoints(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
