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

type valuationService struct {
	BaseService
	invoices portsrepo.InvoiceWriter
}

// NewValuationService creates the wheat purchase invoice service.
func NewValuationService(invoices portsrepo.InvoiceWriter) portssvc.ValuationSvc {
	return &valuationService{invoices: invoices}
}

var _ portssvc.ValuationSvc = (*valuationService)(nil)

// PreviewInvoice returns the live totals. Non-numeric inputs leave the totals unset and are reported
// as field errors alongside them.
func (s *valuationService) PreviewInvoice(ctx context.Context, form forms.InvoiceForm) (accounting.InvoiceTotals, error) {
	totals, err := accounting.ValuateInvoice(form.WheatQuantity, form.RatePerKg, form.InitialPayment)
	if err != nil {
		s.LogDebug(ctx, "Invoice preview has invalid figures", slog.String("error", err.Error()))
	}
	return totals, err
}

func (s *valuationService) SubmitInvoice(ctx context.Context, form forms.InvoiceForm) (*domain.Invoice, error) {
	invoice, err := form.ToInvoice()
	if err != nil {
		s.LogDebug(ctx, "Invoice form rejected", slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.invoices.CreateInvoice(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to post invoice",
			slog.String("type", string(invoice.Type)),
			slog.String("total", invoice.TotalAmount.StringFixed(2)))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice posted",
		slog.String("invoice_id", created.InvoiceID),
		slog.String("type", string(created.Type)),
		slog.String("total", created.TotalAmount.StringFixed(2)),
		slog.String("status", string(created.Status)))
	return created, nil
}
