package services

import (
	"context"
	"log/slog"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
)

type dashboardService struct {
	BaseService
	accounts portsrepo.AccountReader
}

// NewDashboardService creates the balance summary service.
func NewDashboardService(accounts portsrepo.AccountReader) portssvc.DashboardSvc {
	return &dashboardService{accounts: accounts}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// Summary totals the backend's current balances. Nothing is estimated locally.
func (s *dashboardService) Summary(ctx context.Context) (*domain.FinancialSummary, error) {
	accounts, err := s.accounts.ListAllAccounts(ctx, domain.AccountQuery{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for dashboard")
		return nil, err
	}
	summary := accounting.Summarize(accounts)
	s.LogDebug(ctx, "Dashboard summary computed",
		slog.Int("accounts", summary.AccountCount),
		slog.Int("active", summary.ActiveCount))
	return &summary, nil
}
