package services

import (
	"context"
	"log/slog"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	portsrepo "github.com/flourmill/mill_ledger/internal/core/ports/repositories"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
)

// PayrollBackend is what the payroll service needs from the ERP backend.
type PayrollBackend interface {
	portsrepo.AccountReader
	portsrepo.SalaryWriter
}

type payrollService struct {
	BaseService
	backend PayrollBackend
}

// NewPayrollService creates the salary service.
func NewPayrollService(backend PayrollBackend) portssvc.PayrollSvc {
	return &payrollService{backend: backend}
}

var _ portssvc.PayrollSvc = (*payrollService)(nil)

// PreviewSalary returns the live figures of the form. Once both the salary and the cash account
// are chosen, it also resolves them against the backend.
func (s *payrollService) PreviewSalary(ctx context.Context, form forms.SalaryForm) (*portssvc.SalaryPreview, error) {
	preview := &portssvc.SalaryPreview{
		Breakdown:     form.Breakdown,
		ProratedBasic: form.ProratedBasic,
	}
	if form.SalaryAccount == "" || form.CashAccount == "" {
		return preview, nil
	}

	pair, err := s.resolveAccounts(ctx, form.SalaryAccount, form.CashAccount)
	if err != nil {
		return nil, err
	}
	preview.Accounts = pair
	return preview, nil
}

func (s *payrollService) SubmitSalary(ctx context.Context, form forms.SalaryForm) (*domain.SalaryRecord, error) {
	record, err := form.ToSalaryRecord()
	if err != nil {
		s.LogDebug(ctx, "Salary form rejected", slog.String("error", err.Error()))
		return nil, err
	}

	if _, err := s.resolveAccounts(ctx, record.SalaryAccount, record.CashAccount); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateSalary(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to post salary",
			slog.String("employee", record.Employee),
			slog.Int("month", record.Month),
			slog.Int("year", record.Year))
		return nil, err
	}

	s.LogInfo(ctx, "Salary posted",
		slog.String("salary_id", created.SalaryID),
		slog.String("employee", created.Employee),
		slog.String("net_salary", created.NetSalary.StringFixed(2)))
	return created, nil
}

func (s *payrollService) resolveAccounts(ctx context.Context, salaryAccountID, cashAccountID string) (*domain.AccountPair, error) {
	accounts, err := fetchAccounts(ctx, s.backend, salaryAccountID, cashAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load salary accounts",
			slog.String("salary_account", salaryAccountID),
			slog.String("cash_account", cashAccountID))
		return nil, err
	}
	pair, err := accounting.BuildSalaryTransaction(salaryAccountID, cashAccountID, accounts)
	if err != nil {
		s.LogDebug(ctx, "Salary accounts rejected", slog.String("error", err.Error()))
		return nil, err
	}
	return &pair, nil
}
