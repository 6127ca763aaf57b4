package dto

import (
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/flourmill/mill_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

const queryDateLayout = "2006-01-02"

// LedgerQueryParams defines the query parameters of an account statement.
// Date filters narrow the displayed entries only; balances always cover the full history.
type LedgerQueryParams struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Checkpoint string `form:"checkpoint"`
	Resume     bool   `form:"resume"`
}

// ToQuery parses the dates. The end date includes the whole day.
func (p LedgerQueryParams) ToQuery() (portssvc.StatementQuery, error) {
	errs := apperrors.FieldErrors{}
	query := portssvc.StatementQuery{
		Page:            p.Page,
		Limit:           p.Limit,
		Resume:          p.Resume,
		CheckpointToken: strings.TrimSpace(p.Checkpoint),
	}
	if s := strings.TrimSpace(p.StartDate); s != "" {
		t, err := time.Parse(queryDateLayout, s)
		if err != nil {
			errs.Add("startDate", "start date must be a date (YYYY-MM-DD)")
		}
		query.StartDate = t
	}
	if s := strings.TrimSpace(p.EndDate); s != "" {
		t, err := time.Parse(queryDateLayout, s)
		if err != nil {
			errs.Add("endDate", "end date must be a date (YYYY-MM-DD)")
		} else {
			query.EndDate = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	if err := errs.OrNil(); err != nil {
		return portssvc.StatementQuery{}, err
	}
	return query, nil
}

// Values returns the submitted parameters for echoing back on error.
func (p LedgerQueryParams) Values() map[string]string {
	values := map[string]string{}
	if p.StartDate != "" {
		values["startDate"] = p.StartDate
	}
	if p.EndDate != "" {
		values["endDate"] = p.EndDate
	}
	if p.Checkpoint != "" {
		values["checkpoint"] = p.Checkpoint
	}
	return values
}

// StatementResponse is an account ledger page.
type StatementResponse struct {
	Account         domain.Account            `json:"account"`
	OpeningBalance  decimal.Decimal           `json:"openingBalance"`
	ClosingBalance  decimal.Decimal           `json:"closingBalance"`
	ClosingDisplay  string                    `json:"closingDisplay"`
	TotalDebits     decimal.Decimal           `json:"totalDebits"`
	TotalCredits    decimal.Decimal           `json:"totalCredits"`
	Entries         []domain.LedgerEntry      `json:"entries"`
	Page            int                       `json:"page"`
	TotalPages      int                       `json:"totalPages"`
	TotalEntries    int                       `json:"totalEntries"`
	Reconciliation  accounting.Reconciliation `json:"reconciliation"`
	Checkpoint      *domain.BalanceCheckpoint `json:"checkpoint,omitempty"`
	CheckpointToken string                    `json:"checkpointToken,omitempty"`
	Resumed         bool                      `json:"resumed"`
}

// ToStatementResponse converts a computed statement.
func ToStatementResponse(s *portssvc.Statement, currency string) StatementResponse {
	entries := s.Entries
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return StatementResponse{
		Account:         s.Account,
		OpeningBalance:  s.OpeningBalance,
		ClosingBalance:  s.ClosingBalance,
		ClosingDisplay:  money.Format(s.ClosingBalance, currency),
		TotalDebits:     s.TotalDebits,
		TotalCredits:    s.TotalCredits,
		Entries:         entries,
		Page:            s.Page,
		TotalPages:      s.TotalPages,
		TotalEntries:    s.TotalEntries,
		Reconciliation:  s.Reconciliation,
		Checkpoint:      s.Checkpoint,
		CheckpointToken: s.CheckpointToken,
		Resumed:         s.Resumed,
	}
}

// DashboardResponse is the financial summary with display strings.
type DashboardResponse struct {
	domain.FinancialSummary
	Currency           string `json:"currency"`
	CashInHandDisplay  string `json:"cashInHandDisplay"`
	BankBalanceDisplay string `json:"bankBalanceDisplay"`
}

// ToDashboardResponse converts a financial summary.
func ToDashboardResponse(s *domain.FinancialSummary, currency string) DashboardResponse {
	return DashboardResponse{
		FinancialSummary:   *s,
		Currency:           currency,
		CashInHandDisplay:  money.Format(s.CashInHand, currency),
		BankBalanceDisplay: money.Format(s.BankBalance, currency),
	}
}
