package mapping

import (
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/models"
)

// ToDomainAccount converts a backend account document to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.ID,
		Name:           m.AccountName,
		AccountNumber:  m.AccountNumber,
		AccountType:    domain.AccountType(m.AccountType),
		Category:       domain.AccountCategory(m.Category),
		OpeningBalance: m.OpeningBalance,
		CurrentBalance: m.CurrentBalance,
		Status:         domain.AccountStatus(m.Status),
		Warehouse:      m.Warehouse.ID,
	}
}

// ToDomainAccountSlice converts a slice of backend accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
