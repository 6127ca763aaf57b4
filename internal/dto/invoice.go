package dto

import (
	"time"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/flourmill/mill_ledger/internal/utils/money"
)

// InvoiceRequest is a submitted wheat purchase form. Numeric fields accept JSON strings or numbers.
type InvoiceRequest struct {
	Type           string          `json:"type" binding:"omitempty,oneof=government private" example:"private"`
	Buyer          string          `json:"buyer" example:"Ali Traders"`
	PRCenter       string          `json:"prCenter" example:"PR Center Okara"`
	Warehouse      string          `json:"warehouse" example:"wh-okara"`
	WheatQuantity  money.RawAmount `json:"wheatQuantity" swaggertype:"string" example:"1000"`
	RatePerKg      money.RawAmount `json:"ratePerKg" swaggertype:"string" example:"45"`
	InitialPayment money.RawAmount `json:"initialPayment" swaggertype:"string" example:"30000"`
	PaymentMethod  string          `json:"paymentMethod" binding:"omitempty,oneof=cash bank" example:"cash"`
	InvoiceDate    string          `json:"invoiceDate" example:"2024-03-20"`
	Description    string          `json:"description"`
}

// ToForm replays the request onto a fresh invoice form.
func (r InvoiceRequest) ToForm(today time.Time) forms.InvoiceForm {
	return applyFields(forms.NewInvoiceForm(today),
		fieldValue{forms.InvoiceFieldType, r.Type},
		fieldValue{forms.InvoiceFieldBuyer, r.Buyer},
		fieldValue{forms.InvoiceFieldPRCenter, r.PRCenter},
		fieldValue{forms.InvoiceFieldWarehouse, r.Warehouse},
		raw(forms.InvoiceFieldWheatQuantity, r.WheatQuantity),
		raw(forms.InvoiceFieldRatePerKg, r.RatePerKg),
		raw(forms.InvoiceFieldInitialPayment, r.InitialPayment),
		fieldValue{forms.InvoiceFieldPaymentMethod, r.PaymentMethod},
		fieldValue{forms.InvoiceFieldInvoiceDate, r.InvoiceDate},
		fieldValue{forms.InvoiceFieldDescription, r.Description},
	)
}

// InvoicePreviewResponse carries the live totals of an invoice form.
// Totals.Set is false while quantity or rate is blank; the amounts are then not meaningful.
type InvoicePreviewResponse struct {
	Totals           accounting.InvoiceTotals `json:"totals"`
	Status           domain.InvoiceStatus     `json:"status,omitempty"`
	TotalDisplay     string                   `json:"totalDisplay,omitempty"`
	RemainingDisplay string                   `json:"remainingDisplay,omitempty"`
}

// ToInvoicePreviewResponse formats previewed totals.
func ToInvoicePreviewResponse(totals accounting.InvoiceTotals, currency string) InvoicePreviewResponse {
	resp := InvoicePreviewResponse{Totals: totals}
	if totals.Set {
		resp.Status = accounting.InvoiceStatus(totals)
		resp.TotalDisplay = money.Format(totals.TotalAmount, currency)
		resp.RemainingDisplay = money.Format(totals.RemainingAmount, currency)
	}
	return resp
}

// InvoiceResponse is a posted invoice.
type InvoiceResponse struct {
	domain.Invoice
	TotalDisplay     string `json:"totalDisplay"`
	RemainingDisplay string `json:"remainingDisplay"`
}

// ToInvoiceResponse converts a posted invoice.
func ToInvoiceResponse(inv *domain.Invoice, currency string) InvoiceResponse {
	return InvoiceResponse{
		Invoice:          *inv,
		TotalDisplay:     money.Format(inv.TotalAmount, currency),
		RemainingDisplay: money.Format(inv.RemainingAmount, currency),
	}
}
