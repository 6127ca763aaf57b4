package accounting

import (
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize totals current balances per account type, plus cash in hand and bank balance.
func Summarize(accounts []domain.Account) domain.FinancialSummary {
	summary := domain.FinancialSummary{
		TotalsByType: map[domain.AccountType]decimal.Decimal{
			domain.Asset:     decimal.Zero,
			domain.Liability: decimal.Zero,
			domain.Equity:    decimal.Zero,
			domain.Revenue:   decimal.Zero,
			domain.Expense:   decimal.Zero,
		},
		CashInHand:  decimal.Zero,
		BankBalance: decimal.Zero,
	}
	for _, acc := range accounts {
		summary.AccountCount++
		if !acc.IsActive() {
			continue
		}
		summary.ActiveCount++
		summary.TotalsByType[acc.AccountType] = summary.TotalsByType[acc.AccountType].Add(acc.CurrentBalance)
		if acc.AccountType != domain.Asset {
			continue
		}
		switch acc.Category {
		case domain.CategoryCash:
			summary.CashInHand = summary.CashInHand.Add(acc.CurrentBalance)
		case domain.CategoryBank:
			summary.BankBalance = summary.BankBalance.Add(acc.CurrentBalance)
		}
	}
	return summary
}
