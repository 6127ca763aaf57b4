package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/platform/metrics"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/flourmill/mill_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LedgerBackend is what the ledger service needs from the ERP backend.
type LedgerBackend interface {
	portsrepo.AccountReader
	portsrepo.LedgerReader
}

type ledgerService struct {
	BaseService
	backend     LedgerBackend
	checkpoints portsrepo.CheckpointRepositoryFacade
	pageSize    int
	keep        int
	now         func() time.Time
}

// LedgerOption configures the ledger service.
type LedgerOption func(*ledgerService)

// WithCheckpointStore enables balance checkpoints, keeping the newest keep per account.
func WithCheckpointStore(repo portsrepo.CheckpointRepositoryFacade, keep int) LedgerOption {
	return func(s *ledgerService) {
		s.checkpoints = repo
		if keep > 0 {
			s.keep = keep
		}
	}
}

// WithLedgerPageSize sets the number of entries per statement page when the caller asks for none.
func WithLedgerPageSize(size int) LedgerOption {
	return func(s *ledgerService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates the statement service. Without a checkpoint store every statement
// replays the full account history.
func NewLedgerService(backend LedgerBackend, options ...LedgerOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		backend:  backend,
		pageSize: 50,
		keep:     5,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Statement computes the account's running ledger and reconciles the closing balance with
// the backend's current balance. Date filters and paging only narrow what is displayed.
func (s *ledgerService) Statement(ctx context.Context, accountID string, query portssvc.StatementQuery) (*portssvc.Statement, error) {
	if accountID == "" {
		return nil, apperrors.NewFieldError("accountID", "account is required")
	}
	if !query.StartDate.IsZero() && !query.EndDate.IsZero() && query.EndDate.Before(query.StartDate) {
		return nil, apperrors.NewFieldError("endDate", "end date must not be before start date")
	}

	checkpoint, err := s.startingCheckpoint(ctx, accountID, query)
	if err != nil {
		return nil, err
	}

	ledger, resumed, err := s.computeLedger(ctx, accountID, checkpoint, query.CheckpointToken != "")
	if err != nil {
		return nil, err
	}

	rec := accounting.Reconcile(ledger.ClosingBalance, ledger.Account.CurrentBalance)
	metrics.ObserveReconciliation(rec.InSync)
	if !rec.InSync {
		s.LogWarn(ctx, "Ledger closing balance differs from backend balance",
			slog.String("account_id", accountID),
			slog.String("local", rec.LocalEstimate.StringFixed(2)),
			slog.String("server", rec.ServerValue.StringFixed(2)),
			slog.String("drift", rec.Drift.StringFixed(2)))
	}

	stmt := &portssvc.Statement{
		Account:        ledger.Account,
		OpeningBalance: ledger.OpeningBalance,
		ClosingBalance: ledger.ClosingBalance,
		TotalDebits:    ledger.TotalDebits,
		TotalCredits:   ledger.TotalCredits,
		Reconciliation: rec,
		Resumed:        resumed,
	}

	if cp := s.storeCheckpoint(ctx, ledger, rec, checkpoint, resumed); cp != nil {
		stmt.Checkpoint = cp
		stmt.CheckpointToken = pagination.EncodeCheckpointToken(pagination.CheckpointCursor{
			CheckpointID: cp.CheckpointID,
			AccountID:    cp.AccountID,
			AsOf:         cp.AsOf,
		})
	}

	limit := query.Limit
	if limit <= 0 {
		limit = s.pageSize
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	window := ledger.Window(query.StartDate, query.EndDate)
	stmt.Entries, stmt.TotalPages = window.Page(page, limit)
	stmt.Page = page
	stmt.TotalEntries = len(window.Entries)

	s.LogDebug(ctx, "Statement computed",
		slog.String("account_id", accountID),
		slog.Bool("resumed", resumed),
		slog.Int("entries", stmt.TotalEntries),
		slog.Bool("in_sync", rec.InSync))
	return stmt, nil
}

// startingCheckpoint picks the checkpoint to resume from, or nil for a full replay.
func (s *ledgerService) startingCheckpoint(ctx context.Context, accountID string, query portssvc.StatementQuery) (*domain.BalanceCheckpoint, error) {
	if query.CheckpointToken != "" {
		cursor, err := pagination.DecodeCheckpointToken(query.CheckpointToken)
		if err != nil {
			return nil, err
		}
		if cursor.AccountID != accountID {
			return nil, fmt.Errorf("%w: checkpoint token belongs to another account", apperrors.ErrValidation)
		}
		if s.checkpoints == nil {
			return nil, fmt.Errorf("%w: balance checkpoints are disabled", apperrors.ErrNotFound)
		}
		cp, err := s.checkpoints.FindCheckpointByID(ctx, cursor.CheckpointID)
		if err != nil {
			return nil, err
		}
		if cp.AccountID != accountID {
			return nil, fmt.Errorf("%w: checkpoint belongs to another account", apperrors.ErrValidation)
		}
		return cp, nil
	}

	if !query.Resume || s.checkpoints == nil {
		return nil, nil
	}
	cp, err := s.checkpoints.FindLatestCheckpoint(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load latest checkpoint, replaying full history", slog.String("account_id", accountID))
		return nil, nil
	}
	return cp, nil
}

// computeLedger fetches the account and its history concurrently and accumulates the balance.
// A resumed ledger only fetches history from the checkpoint's day on, and is only trusted when its
// closing balance agrees with the backend. A backdated transaction lands before the checkpoint and
// shows up as drift. A stale checkpoint is a conflict when requested explicitly; an implicit one
// is dropped with its siblings and the full history replayed.
func (s *ledgerService) computeLedger(ctx context.Context, accountID string, cp *domain.BalanceCheckpoint, explicit bool) (accounting.Ledger, bool, error) {
	historyQuery := domain.LedgerQuery{}
	if cp != nil {
		asOf := cp.AsOf.UTC()
		historyQuery.StartDate = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	}

	account, history, err := s.load(ctx, accountID, historyQuery)
	if err != nil {
		return accounting.Ledger{}, false, err
	}

	if cp != nil {
		ledger, err := accounting.ResumeLedger(*account, *cp, history)
		if err == nil {
			if accounting.Reconcile(ledger.ClosingBalance, account.CurrentBalance).InSync {
				return ledger, true, nil
			}
			err = fmt.Errorf("%w: checkpoint %s no longer agrees with the backend balance", apperrors.ErrConflict, cp.CheckpointID)
		}
		if !errors.Is(err, apperrors.ErrConflict) || explicit {
			return accounting.Ledger{}, false, err
		}
		s.LogWarn(ctx, "Stale checkpoint, replaying full history",
			slog.String("account_id", accountID),
			slog.String("checkpoint_id", cp.CheckpointID),
			slog.String("reason", err.Error()))
		if delErr := s.checkpoints.DeleteCheckpoints(ctx, accountID); delErr != nil {
			s.LogError(ctx, delErr, "Failed to drop stale checkpoints", slog.String("account_id", accountID))
		}
		if history, err = s.backend.GetFullLedger(ctx, accountID, domain.LedgerQuery{}); err != nil {
			return accounting.Ledger{}, false, err
		}
	}

	opening := account.OpeningBalance
	ledger, err := accounting.ComputeLedger(*account, &opening, history)
	return ledger, false, err
}

func (s *ledgerService) load(ctx context.Context, accountID string, historyQuery domain.LedgerQuery) (*domain.Account, []domain.Transaction, error) {
	var (
		account *domain.Account
		history []domain.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = s.backend.GetAccount(gctx, accountID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.backend.GetFullLedger(gctx, accountID, historyQuery)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load account history", slog.String("account_id", accountID))
		return nil, nil, err
	}
	return account, history, nil
}

// storeCheckpoint saves the ledger's closing position. Only balances that agree with the backend
// are stored, and resuming without new transactions reuses the checkpoint it started from.
// Storage failures are logged and do not fail the statement.
func (s *ledgerService) storeCheckpoint(ctx context.Context, ledger accounting.Ledger, rec accounting.Reconciliation, from *domain.BalanceCheckpoint, resumed bool) *domain.BalanceCheckpoint {
	if s.checkpoints == nil {
		return nil
	}
	if !rec.InSync {
		return nil
	}
	cp, ok := ledger.Checkpoint(s.now().UTC())
	if !ok {
		if resumed {
			return from
		}
		return nil
	}
	cp.CheckpointID = uuid.NewString()
	if err := s.checkpoints.SaveCheckpoint(ctx, cp, s.keep); err != nil {
		s.LogError(ctx, err, "Failed to store balance checkpoint", slog.String("account_id", cp.AccountID))
		return nil
	}
	return &cp
}

func (s *ledgerService) LatestCheckpoint(ctx context.Context, accountID string) (*domain.BalanceCheckpoint, error) {
	if s.checkpoints == nil {
		return nil, fmt.Errorf("%w: balance checkpoints are disabled", apperrors.ErrNotFound)
	}
	cp, err := s.checkpoints.FindLatestCheckpoint(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load latest checkpoint", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return cp, nil
}
