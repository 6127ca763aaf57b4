package mapping

import (
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/models"
)

// ToDomainTransaction converts a populated backend transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.ID,
		TransactionType: domain.TransactionType(m.TransactionType),
		DebitAccount:    domain.AccountRef{AccountID: m.DebitAccount.ID, Name: m.DebitAccount.DisplayName()},
		CreditAccount:   domain.AccountRef{AccountID: m.CreditAccount.ID, Name: m.CreditAccount.DisplayName()},
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		Description:     m.Description,
		Reference:       m.Reference,
		Warehouse:       m.Warehouse.ID,
		Currency:        m.Currency,
	}
}

// ToDomainTransactionSlice keeps the backend order, which is the accumulation order of the ledger.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToTransactionRequest builds the POST body for a transaction.
func ToTransactionRequest(d domain.Transaction) models.TransactionRequest {
	return models.TransactionRequest{
		TransactionType: string(d.TransactionType),
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
		DebitAccount:    d.DebitAccount.AccountID,
		CreditAccount:   d.CreditAccount.AccountID,
		PaymentMethod:   string(d.PaymentMethod),
		PaymentStatus:   string(d.PaymentStatus),
		Currency:        d.Currency,
		Warehouse:       d.Warehouse,
		Reference:       d.Reference,
	}
}
