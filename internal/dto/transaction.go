package dto

import (
	"time"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	"github.com/flourmill/mill_ledger/internal/utils/money"
)

// ExpenseRequest is a submitted expense form. Only Cash and Bank Transfer have a source account.
type ExpenseRequest struct {
	ExpenseAccount string          `json:"expenseAccount" example:"acc-rent"`
	Amount         money.RawAmount `json:"amount" swaggertype:"string" example:"1500"`
	PaymentMethod  string          `json:"paymentMethod" binding:"omitempty,paymentmethod" example:"Cash"`
	ExpenseDate    string          `json:"expenseDate" example:"2024-03-20"`
	Description    string          `json:"description" example:"March rent"`
	Reference      string          `json:"reference"`
	Warehouse      string          `json:"warehouse"`
}

// ToForm replays the request onto a fresh expense form.
func (r ExpenseRequest) ToForm(today time.Time) forms.ExpenseForm {
	return applyFields(forms.NewExpenseForm(today),
		fieldValue{forms.ExpenseFieldExpenseAccount, r.ExpenseAccount},
		raw(forms.ExpenseFieldAmount, r.Amount),
		fieldValue{forms.ExpenseFieldPaymentMethod, r.PaymentMethod},
		fieldValue{forms.ExpenseFieldExpenseDate, r.ExpenseDate},
		fieldValue{forms.ExpenseFieldDescription, r.Description},
		fieldValue{forms.ExpenseFieldReference, r.Reference},
		fieldValue{forms.ExpenseFieldWarehouse, r.Warehouse},
	)
}

// TransactionRequest is a submitted general transaction form.
type TransactionRequest struct {
	TransactionType string          `json:"transactionType" example:"Transfer"`
	DebitAccount    string          `json:"debitAccount" example:"acc-bank"`
	CreditAccount   string          `json:"creditAccount" example:"acc-cash"`
	Amount          money.RawAmount `json:"amount" swaggertype:"string" example:"10000"`
	TransactionDate string          `json:"transactionDate" example:"2024-03-20"`
	PaymentMethod   string          `json:"paymentMethod" binding:"omitempty,paymentmethod" example:"Bank Transfer"`
	PaymentStatus   string          `json:"paymentStatus" binding:"omitempty,oneof=Pending Completed Failed Cancelled"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	Warehouse       string          `json:"warehouse"`
	Currency        string          `json:"currency" binding:"omitempty,len=3" example:"PKR"`
}

// ToForm replays the request onto a fresh transaction form in the given default currency.
func (r TransactionRequest) ToForm(today time.Time, currency string) forms.TransactionForm {
	return applyFields(forms.NewTransactionForm(today, currency),
		fieldValue{forms.TxnFieldTransactionType, r.TransactionType},
		fieldValue{forms.TxnFieldDebitAccount, r.DebitAccount},
		fieldValue{forms.TxnFieldCreditAccount, r.CreditAccount},
		raw(forms.TxnFieldAmount, r.Amount),
		fieldValue{forms.TxnFieldTransactionDate, r.TransactionDate},
		fieldValue{forms.TxnFieldPaymentMethod, r.PaymentMethod},
		fieldValue{forms.TxnFieldPaymentStatus, r.PaymentStatus},
		fieldValue{forms.TxnFieldDescription, r.Description},
		fieldValue{forms.TxnFieldReference, r.Reference},
		fieldValue{forms.TxnFieldWarehouse, r.Warehouse},
		fieldValue{forms.TxnFieldCurrency, r.Currency},
	)
}

// TransactionResponse is a posted transaction.
type TransactionResponse struct {
	domain.Transaction
	AmountDisplay string `json:"amountDisplay"`
}

// ToTransactionResponse converts a posted transaction, displayed in its own currency.
func ToTransactionResponse(txn *domain.Transaction, fallbackCurrency string) TransactionResponse {
	currency := txn.Currency
	if currency == "" {
		currency = fallbackCurrency
	}
	return TransactionResponse{Transaction: *txn, AmountDisplay: money.Format(txn.Amount, currency)}
}

// ExpensePreviewResponse shows the debit and credit accounts an expense would post to.
type ExpensePreviewResponse struct {
	Accounts domain.AccountPair `json:"accounts"`
}
