package accounting

import (
	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// InvoiceTotals holds the derived figures of a purchase invoice.
// When Set is false the quantity or rate has not been entered yet and the totals are blank, not zero.
type InvoiceTotals struct {
	Set             bool            `json:"set"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
}

// ComputeInvoiceTotals derives totalAmount = q*r and remainingAmount = max(total - payment, 0),
// both rounded to two places. A nil quantity or rate leaves the totals unset.
// A nil initial payment counts as zero.
func ComputeInvoiceTotals(quantity, rate, initialPayment *decimal.Decimal) (InvoiceTotals, error) {
	errs := apperrors.FieldErrors{}
	if quantity != nil && !quantity.IsPositive() {
		errs.Add("wheatQuantity", "wheat quantity must be greater than zero")
	}
	if rate != nil && !rate.IsPositive() {
		errs.Add("ratePerKg", "rate per kg must be greater than zero")
	}
	if initialPayment != nil && initialPayment.IsNegative() {
		errs.Add("initialPayment", "initial payment must not be negative")
	}
	if err := errs.OrNil(); err != nil {
		return InvoiceTotals{}, err
	}
	if quantity == nil || rate == nil {
		return InvoiceTotals{}, nil
	}

	paid := decimal.Zero
	if initialPayment != nil {
		paid = *initialPayment
	}
	total := money.Round(quantity.Mul(*rate))
	return InvoiceTotals{
		Set:             true,
		TotalAmount:     total,
		RemainingAmount: remaining(total, paid),
	}, nil
}

// ValuateInvoice runs raw form input through the parse boundary before ComputeInvoiceTotals.
// Empty fields leave the totals unset; non-numeric fields leave them unset and report a field error.
func ValuateInvoice(rawQuantity, rawRate, rawInitialPayment string) (InvoiceTotals, error) {
	errs := apperrors.FieldErrors{}
	quantity, err := money.ParsePtr(rawQuantity)
	if err != nil {
		errs.Add("wheatQuantity", "wheat quantity must be a number")
	}
	rate, err := money.ParsePtr(rawRate)
	if err != nil {
		errs.Add("ratePerKg", "rate per kg must be a number")
	}
	payment, err := money.ParsePtr(rawInitialPayment)
	if err != nil {
		errs.Add("initialPayment", "initial payment must be a number")
	}
	if err := errs.OrNil(); err != nil {
		return InvoiceTotals{}, err
	}
	return ComputeInvoiceTotals(quantity, rate, payment)
}

// ApplyPayment returns the balance left after a further payment, clamped at zero.
// Overpayment is not modelled as credit.
func ApplyPayment(totals InvoiceTotals, payment decimal.Decimal) (InvoiceTotals, error) {
	if !totals.Set {
		return totals, apperrors.NewFieldError("wheatQuantity", "invoice totals are not set")
	}
	if payment.IsNegative() {
		return totals, apperrors.NewFieldError("payment", "payment must not be negative")
	}
	totals.RemainingAmount = remaining(totals.RemainingAmount, payment)
	return totals, nil
}

// InvoiceStatus derives the settlement status from the remaining amount.
func InvoiceStatus(totals InvoiceTotals) domain.InvoiceStatus {
	if totals.Set && totals.RemainingAmount.IsZero() {
		return domain.InvoiceCompleted
	}
	return domain.InvoicePending
}

func remaining(total, paid decimal.Decimal) decimal.Decimal {
	return money.Round(money.Max(total.Sub(paid), decimal.Zero))
}
