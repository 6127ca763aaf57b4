package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/core/services"
	"github.com/flourmill/mill_ledger/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var computedAt = time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	backend     *MockBackend
	checkpoints *MockCheckpointRepository
	account     domain.Account
	history     []domain.Transaction
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.backend = new(MockBackend)
	suite.checkpoints = new(MockCheckpointRepository)

	suite.account = cashAccount
	suite.account.OpeningBalance = dec("1000")
	suite.account.CurrentBalance = dec("1300")

	cash := domain.AccountRef{AccountID: "cash", Name: "Cash in Hand"}
	suite.history = []domain.Transaction{
		{TransactionID: "t1", TransactionType: domain.Receipt, DebitAccount: cash,
			CreditAccount: domain.AccountRef{AccountID: "sales", Name: "Flour Sales"}, Amount: dec("500"),
			TransactionDate: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)},
		{TransactionID: "t2", TransactionType: domain.Payment, CreditAccount: cash,
			DebitAccount: domain.AccountRef{AccountID: "rent", Name: "Rent Expense"}, Amount: dec("200"),
			TransactionDate: time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)},
	}
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.backend.AssertExpectations(suite.T())
	suite.checkpoints.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) newService(withStore bool) portssvc.LedgerSvcFacade {
	opts := []services.LedgerOption{services.WithClock(func() time.Time { return computedAt })}
	if withStore {
		opts = append(opts, services.WithCheckpointStore(suite.checkpoints, 5))
	}
	return services.NewLedgerService(suite.backend, opts...)
}

func (suite *LedgerServiceTestSuite) expectAccount() {
	account := suite.account
	suite.backend.On("GetAccount", mock.Anything, "cash").Return(&account, nil).Once()
}

func (suite *LedgerServiceTestSuite) expectHistory(query domain.LedgerQuery, txns []domain.Transaction) {
	suite.backend.On("GetFullLedger", mock.Anything, "cash", query).Return(txns, nil).Once()
}

func (suite *LedgerServiceTestSuite) TestStatement_FullReplay() {
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{}, suite.history)

	stmt, err := suite.newService(false).Statement(suite.ctx, "cash", portssvc.StatementQuery{})

	suite.Require().NoError(err)
	suite.Equal("1000", stmt.OpeningBalance.String())
	suite.Equal("1300", stmt.ClosingBalance.String())
	suite.Equal("500", stmt.TotalDebits.String())
	suite.Equal("200", stmt.TotalCredits.String())
	suite.Require().Len(stmt.Entries, 2)
	suite.Equal("t2", stmt.Entries[0].TransactionID, "newest first")
	suite.Equal("1300", stmt.Entries[0].RunningBalance.String())
	suite.Equal("1500", stmt.Entries[1].RunningBalance.String())
	suite.True(stmt.Reconciliation.InSync)
	suite.False(stmt.Resumed)
	suite.Nil(stmt.Checkpoint)
	suite.Empty(stmt.CheckpointToken)
}

func (suite *LedgerServiceTestSuite) TestStatement_StoresCheckpointWhenInSync() {
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{}, suite.history)
	suite.checkpoints.On("SaveCheckpoint", suite.ctx, mock.MatchedBy(func(cp domain.BalanceCheckpoint) bool {
		return cp.AccountID == "cash" &&
			cp.LastTransactionID == "t2" &&
			cp.Balance.Equal(dec("1300")) &&
			cp.TransactionCount == 2 &&
			cp.CheckpointID != "" &&
			cp.ComputedAt.Equal(computedAt)
	}), 5).Return(nil).Once()

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{})

	suite.Require().NoError(err)
	suite.Require().NotNil(stmt.Checkpoint)
	cursor, err := pagination.DecodeCheckpointToken(stmt.CheckpointToken)
	suite.Require().NoError(err)
	suite.Equal(stmt.Checkpoint.CheckpointID, cursor.CheckpointID)
	suite.Equal("cash", cursor.AccountID)
}

func (suite *LedgerServiceTestSuite) TestStatement_DriftSkipsCheckpoint() {
	suite.account.CurrentBalance = dec("1350")
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{}, suite.history)

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{})

	suite.Require().NoError(err)
	suite.False(stmt.Reconciliation.InSync)
	suite.Equal("50", stmt.Reconciliation.Drift.String())
	suite.Equal("1350", stmt.Reconciliation.Authoritative.String())
	suite.Equal("1300", stmt.ClosingBalance.String(), "local estimate is reported, not overwritten")
	suite.Nil(stmt.Checkpoint)
	suite.checkpoints.AssertNotCalled(suite.T(), "SaveCheckpoint", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestStatement_ResumesFromLatestCheckpoint() {
	cp := &domain.BalanceCheckpoint{CheckpointID: "cp1", AccountID: "cash", AsOf: suite.history[0].TransactionDate,
		Balance: dec("1500"), LastTransactionID: "t1", TransactionCount: 1}
	suite.checkpoints.On("FindLatestCheckpoint", suite.ctx, "cash").Return(cp, nil).Once()
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{StartDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}, suite.history)
	suite.checkpoints.On("SaveCheckpoint", suite.ctx, mock.MatchedBy(func(saved domain.BalanceCheckpoint) bool {
		return saved.LastTransactionID == "t2" && saved.TransactionCount == 2 && saved.Balance.Equal(dec("1300"))
	}), 5).Return(nil).Once()

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{Resume: true})

	suite.Require().NoError(err)
	suite.True(stmt.Resumed)
	suite.Equal("1500", stmt.OpeningBalance.String())
	suite.Equal("1300", stmt.ClosingBalance.String())
	suite.Len(stmt.Entries, 1)
	suite.True(stmt.Reconciliation.InSync)
}

func (suite *LedgerServiceTestSuite) TestStatement_ResumeWithoutNewTransactionsKeepsCheckpoint() {
	cp := &domain.BalanceCheckpoint{CheckpointID: "cp2", AccountID: "cash", AsOf: suite.history[1].TransactionDate,
		Balance: dec("1300"), LastTransactionID: "t2", TransactionCount: 2}
	suite.checkpoints.On("FindLatestCheckpoint", suite.ctx, "cash").Return(cp, nil).Once()
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{StartDate: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)}, suite.history[1:])

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{Resume: true})

	suite.Require().NoError(err)
	suite.Empty(stmt.Entries)
	suite.Equal("1300", stmt.ClosingBalance.String())
	suite.Require().NotNil(stmt.Checkpoint)
	suite.Equal("cp2", stmt.Checkpoint.CheckpointID)
	suite.checkpoints.AssertNotCalled(suite.T(), "SaveCheckpoint", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestStatement_StaleLatestCheckpointFallsBackToReplay() {
	cp := &domain.BalanceCheckpoint{CheckpointID: "cp1", AccountID: "cash", AsOf: suite.history[0].TransactionDate,
		Balance: dec("1500"), LastTransactionID: "deleted-txn", TransactionCount: 1}
	suite.checkpoints.On("FindLatestCheckpoint", suite.ctx, "cash").Return(cp, nil).Once()
	suite.checkpoints.On("DeleteCheckpoints", suite.ctx, "cash").Return(nil).Once()
	suite.checkpoints.On("SaveCheckpoint", suite.ctx, mock.Anything, 5).Return(nil).Once()
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{StartDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}, suite.history)
	suite.expectHistory(domain.LedgerQuery{}, suite.history)

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{Resume: true})

	suite.Require().NoError(err)
	suite.False(stmt.Resumed)
	suite.Equal("1300", stmt.ClosingBalance.String())
}

func (suite *LedgerServiceTestSuite) TestStatement_StaleExplicitCheckpointIsConflict() {
	cp := &domain.BalanceCheckpoint{CheckpointID: "cp1", AccountID: "cash", AsOf: suite.history[0].TransactionDate,
		Balance: dec("1500"), LastTransactionID: "deleted-txn", TransactionCount: 1}
	token := pagination.EncodeCheckpointToken(pagination.CheckpointCursor{CheckpointID: "cp1", AccountID: "cash", AsOf: cp.AsOf})
	suite.checkpoints.On("FindCheckpointByID", suite.ctx, "cp1").Return(cp, nil).Once()
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{StartDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)}, suite.history)

	_, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{CheckpointToken: token})

	suite.ErrorIs(err, apperrors.ErrConflict)
}

// backdated returns a receipt dated before the checkpoint at Mar 2, plus the full history
// the backend reports once it is posted.
func (suite *LedgerServiceTestSuite) backdated() (*domain.BalanceCheckpoint, []domain.Transaction) {
	suite.account.CurrentBalance = dec("1400")
	cp := &domain.BalanceCheckpoint{CheckpointID: "cp1", AccountID: "cash", AsOf: suite.history[1].TransactionDate,
		Balance: dec("1300"), LastTransactionID: "t2", TransactionCount: 2}
	late := domain.Transaction{TransactionID: "t0", TransactionType: domain.Receipt,
		DebitAccount:    domain.AccountRef{AccountID: "cash", Name: "Cash in Hand"},
		CreditAccount:   domain.AccountRef{AccountID: "sales", Name: "Flour Sales"},
		Amount:          dec("100"),
		TransactionDate: time.Date(2024, time.February, 28, 10, 0, 0, 0, time.UTC)}
	return cp, append([]domain.Transaction{late}, suite.history...)
}

func (suite *LedgerServiceTestSuite) TestStatement_BackdatedTransactionInvalidatesLatestCheckpoint() {
	cp, full := suite.backdated()
	suite.checkpoints.On("FindLatestCheckpoint", suite.ctx, "cash").Return(cp, nil).Once()
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{StartDate: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)}, suite.history[1:])
	suite.checkpoints.On("DeleteCheckpoints", suite.ctx, "cash").Return(nil).Once()
	suite.expectHistory(domain.LedgerQuery{}, full)
	suite.checkpoints.On("SaveCheckpoint", suite.ctx, mock.MatchedBy(func(saved domain.BalanceCheckpoint) bool {
		return saved.CheckpointID != "cp1" &&
			saved.LastTransactionID == "t2" &&
			saved.TransactionCount == 3 &&
			saved.Balance.Equal(dec("1400"))
	}), 5).Return(nil).Once()

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{Resume: true})

	suite.Require().NoError(err)
	suite.False(stmt.Resumed)
	suite.Equal("1000", stmt.OpeningBalance.String())
	suite.Equal("1400", stmt.ClosingBalance.String())
	suite.True(stmt.Reconciliation.InSync)
	suite.Len(stmt.Entries, 3)
	suite.Require().NotNil(stmt.Checkpoint)
	suite.NotEqual("cp1", stmt.Checkpoint.CheckpointID)
}

func (suite *LedgerServiceTestSuite) TestStatement_BackdatedTransactionExplicitCheckpointIsConflict() {
	cp, _ := suite.backdated()
	token := pagination.EncodeCheckpointToken(pagination.CheckpointCursor{CheckpointID: "cp1", AccountID: "cash", AsOf: cp.AsOf})
	suite.checkpoints.On("FindCheckpointByID", suite.ctx, "cp1").Return(cp, nil).Once()
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{StartDate: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)}, suite.history[1:])

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{CheckpointToken: token})

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(stmt)
	suite.checkpoints.AssertNotCalled(suite.T(), "SaveCheckpoint", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestStatement_DriftOnFullReplayIssuesNoToken() {
	suite.account.CurrentBalance = dec("1400")
	suite.checkpoints.On("FindLatestCheckpoint", suite.ctx, "cash").Return(nil, apperrors.ErrNotFound).Once()
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{}, suite.history)

	stmt, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{Resume: true})

	suite.Require().NoError(err)
	suite.False(stmt.Reconciliation.InSync)
	suite.Nil(stmt.Checkpoint)
	suite.Empty(stmt.CheckpointToken)
}

func (suite *LedgerServiceTestSuite) TestStatement_TokenOfAnotherAccount() {
	token := pagination.EncodeCheckpointToken(pagination.CheckpointCursor{CheckpointID: "cp1", AccountID: "bank", AsOf: computedAt})

	_, err := suite.newService(true).Statement(suite.ctx, "cash", portssvc.StatementQuery{CheckpointToken: token})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestStatement_WindowAndPageKeepFullHistoryBalances() {
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{}, suite.history)

	stmt, err := suite.newService(false).Statement(suite.ctx, "cash", portssvc.StatementQuery{
		StartDate: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		Page:      1,
		Limit:     10,
	})

	suite.Require().NoError(err)
	suite.Require().Len(stmt.Entries, 1)
	suite.Equal("t2", stmt.Entries[0].TransactionID)
	suite.Equal("1300", stmt.Entries[0].RunningBalance.String(), "filter must not reset the running balance")
	suite.Equal(1, stmt.TotalEntries)
	suite.Equal(1, stmt.TotalPages)
	suite.Equal("1300", stmt.ClosingBalance.String())
}

func (suite *LedgerServiceTestSuite) TestStatement_PagePastTheEnd() {
	suite.expectAccount()
	suite.expectHistory(domain.LedgerQuery{}, suite.history)

	stmt, err := suite.newService(false).Statement(suite.ctx, "cash", portssvc.StatementQuery{Page: 3, Limit: 1})

	suite.Require().NoError(err)
	suite.Empty(stmt.Entries)
	suite.Equal(2, stmt.TotalPages)
	suite.Equal(3, stmt.Page)
}

func (suite *LedgerServiceTestSuite) TestStatement_BackendErrorPropagates() {
	suite.backend.On("GetAccount", mock.Anything, "cash").Return(nil, apperrors.ErrUnauthenticated).Once()
	suite.backend.On("GetFullLedger", mock.Anything, "cash", mock.Anything).Return(suite.history, nil).Maybe()

	_, err := suite.newService(false).Statement(suite.ctx, "cash", portssvc.StatementQuery{})

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *LedgerServiceTestSuite) TestStatement_InvalidRange() {
	_, err := suite.newService(false).Statement(suite.ctx, "cash", portssvc.StatementQuery{
		StartDate: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestLatestCheckpoint() {
	cp := &domain.BalanceCheckpoint{CheckpointID: "cp1", AccountID: "cash"}
	suite.checkpoints.On("FindLatestCheckpoint", suite.ctx, "cash").Return(cp, nil).Once()

	got, err := suite.newService(true).LatestCheckpoint(suite.ctx, "cash")

	suite.Require().NoError(err)
	suite.Equal(cp, got)
}

func (suite *LedgerServiceTestSuite) TestLatestCheckpoint_Disabled() {
	_, err := suite.newService(false).LatestCheckpoint(suite.ctx, "cash")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
