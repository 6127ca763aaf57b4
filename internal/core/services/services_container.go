package services

import (
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	ledgerOptions := []LedgerOption{WithLedgerPageSize(cfg.LedgerPageSize)}
	if repos.CheckpointRepo != nil {
		ledgerOptions = append(ledgerOptions, WithCheckpointStore(repos.CheckpointRepo, cfg.CheckpointsToKeep))
	}

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.Backend),
		Valuation:   NewValuationService(repos.Backend),
		Payroll:     NewPayrollService(repos.Backend),
		Expense:     NewExpenseService(repos.Backend, cfg.DefaultCurrency),
		Transaction: NewTransactionService(repos.Backend),
		Ledger:      NewLedgerService(repos.Backend, ledgerOptions...),
		Dashboard:   NewDashboardService(repos.Backend),
	}
}
