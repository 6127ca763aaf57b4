package services

import (
	"context"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ValuationSvc values and posts wheat purchase invoices.
type ValuationSvc interface {
	// PreviewInvoice computes the live totals of a form. It never calls the backend.
	PreviewInvoice(ctx context.Context, form forms.InvoiceForm) (accounting.InvoiceTotals, error)

	// SubmitInvoice validates the form and posts the invoice.
	SubmitInvoice(ctx context.Context, form forms.InvoiceForm) (*domain.Invoice, error)
}

// SalaryPreview is the live view of a salary form.
type SalaryPreview struct {
	Breakdown     accounting.SalaryBreakdown
	ProratedBasic decimal.Decimal
	// Accounts is set once both salary and cash accounts resolve against the backend.
	Accounts *domain.AccountPair
}

// PayrollSvc computes and posts salary records.
type PayrollSvc interface {
	PreviewSalary(ctx context.Context, form forms.SalaryForm) (*SalaryPreview, error)
	SubmitSalary(ctx context.Context, form forms.SalaryForm) (*domain.SalaryRecord, error)
}

// ExpenseSvc resolves the payment-source account of an expense and posts it as a Payment.
type ExpenseSvc interface {
	// PreviewExpense returns the debit/credit pair the expense would post to.
	PreviewExpense(ctx context.Context, form forms.ExpenseForm) (*domain.AccountPair, error)
	SubmitExpense(ctx context.Context, form forms.ExpenseForm) (*domain.Transaction, error)
}

// TransactionSvc posts general transactions.
type TransactionSvc interface {
	SubmitTransaction(ctx context.Context, form forms.TransactionForm) (*domain.Transaction, error)
}
