package erpapi

import (
	"context"
	"net/http"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/models"
	"github.com/flourmill/mill_ledger/internal/utils/mapping"
)

// CreateTransaction posts a transaction and returns it with the id the backend assigned.
func (c *Client) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	var resp models.TransactionEnvelope
	err := c.do(ctx, call{
		operation: "create_transaction",
		method:    http.MethodPost,
		path:      "/api/financial/transactions",
		body:      mapping.ToTransactionRequest(txn),
	}, &resp)
	if err != nil {
		return nil, err
	}
	created := txn
	created.TransactionID = resp.Transaction.ID
	return &created, nil
}

// CreateSalary posts a salary record. The backend recomputes the net salary; its figure wins when returned.
func (c *Client) CreateSalary(ctx context.Context, record domain.SalaryRecord) (*domain.SalaryRecord, error) {
	var resp models.SalaryEnvelope
	err := c.do(ctx, call{
		operation: "create_salary",
		method:    http.MethodPost,
		path:      "/api/financial/salaries",
		body:      mapping.ToSalaryRequest(record),
	}, &resp)
	if err != nil {
		return nil, err
	}
	created := record
	created.SalaryID = resp.Salary.ID
	if resp.Salary.NetSalary.Valid {
		created.NetSalary = resp.Salary.NetSalary.Decimal
	}
	if resp.Salary.Status != "" {
		created.PaymentStatus = domain.PaymentStatus(resp.Salary.Status)
	}
	return &created, nil
}

// CreateInvoice posts a purchase invoice. Totals and status returned by the backend override local ones.
func (c *Client) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	var resp models.InvoiceEnvelope
	err := c.do(ctx, call{
		operation: "create_invoice",
		method:    http.MethodPost,
		path:      "/api/invoice",
		body:      mapping.ToInvoiceRequest(invoice),
	}, &resp)
	if err != nil {
		return nil, err
	}
	created := invoice
	created.InvoiceID = resp.Invoice.ID
	if resp.Invoice.TotalAmount.Valid {
		created.TotalAmount = resp.Invoice.TotalAmount.Decimal
	}
	if resp.Invoice.RemainingAmount.Valid {
		created.RemainingAmount = resp.Invoice.RemainingAmount.Decimal
	}
	if resp.Invoice.Status != "" {
		created.Status = domain.InvoiceStatus(resp.Invoice.Status)
	}
	return &created, nil
}
