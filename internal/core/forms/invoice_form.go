package forms

import (
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
)

// Invoice form field names.
const (
	InvoiceFieldType           = "type"
	InvoiceFieldBuyer          = "buyer"
	InvoiceFieldPRCenter       = "prCenter"
	InvoiceFieldWarehouse      = "warehouse"
	InvoiceFieldWheatQuantity  = "wheatQuantity"
	InvoiceFieldRatePerKg      = "ratePerKg"
	InvoiceFieldInitialPayment = "initialPayment"
	InvoiceFieldPaymentMethod  = "paymentMethod"
	InvoiceFieldInvoiceDate    = "invoiceDate"
	InvoiceFieldDescription    = "description"
)

// InvoiceForm is the state of the wheat purchase invoice form.
// Field values are kept exactly as typed; Totals and Errors are derived from them.
type InvoiceForm struct {
	Type           string
	Buyer          string
	PRCenter       string
	Warehouse      string
	WheatQuantity  string
	RatePerKg      string
	InitialPayment string
	PaymentMethod  string
	InvoiceDate    string
	Description    string

	Totals  accounting.InvoiceTotals
	Errors  apperrors.FieldErrors
	Touched map[string]bool

	today time.Time
}

// NewInvoiceForm returns an empty private-purchase form dated today.
func NewInvoiceForm(today time.Time) InvoiceForm {
	return InvoiceForm{
		Type:          string(domain.InvoicePrivate),
		PaymentMethod: string(domain.InvoiceCash),
		InvoiceDate:   today.Format(dateLayout),
		Errors:        apperrors.FieldErrors{},
		Touched:       map[string]bool{},
		today:         today,
	}
}

// Reduce implements Reducer.
func (s InvoiceForm) Reduce(a Action) InvoiceForm {
	return ReduceInvoice(s, a)
}

// ReduceInvoice returns the state after a. The input state is never modified.
func ReduceInvoice(s InvoiceForm, a Action) InvoiceForm {
	switch a.Kind {
	case Reset:
		return NewInvoiceForm(s.today)
	case Touch:
		s.Touched = touch(s.Touched, a.Field)
		return s
	case SetField:
	default:
		return s
	}

	switch a.Field {
	case InvoiceFieldType:
		s.Type = a.Value
	case InvoiceFieldBuyer:
		s.Buyer = a.Value
	case InvoiceFieldPRCenter:
		s.PRCenter = a.Value
	case InvoiceFieldWarehouse:
		s.Warehouse = a.Value
	case InvoiceFieldWheatQuantity:
		s.WheatQuantity = a.Value
	case InvoiceFieldRatePerKg:
		s.RatePerKg = a.Value
	case InvoiceFieldInitialPayment:
		s.InitialPayment = a.Value
	case InvoiceFieldPaymentMethod:
		s.PaymentMethod = a.Value
	case InvoiceFieldInvoiceDate:
		s.InvoiceDate = a.Value
	case InvoiceFieldDescription:
		s.Description = a.Value
	default:
		s.Errors = unknownField(s.Errors, a.Field)
		return s
	}
	s.Touched = touch(s.Touched, a.Field)
	return s.recompute()
}

func (s InvoiceForm) recompute() InvoiceForm {
	totals, err := accounting.ValuateInvoice(s.WheatQuantity, s.RatePerKg, s.InitialPayment)
	s.Totals = totals
	s.Errors = fieldErrorsOf(err)
	return s
}

// FieldError returns the live error of a field once the user has touched it.
func (s InvoiceForm) FieldError(field string) string {
	return visible(s.Errors, s.Touched, field)
}

// Validate runs the pre-submit checks.
func (s InvoiceForm) Validate() error {
	_, err := s.ToInvoice()
	return err
}

// ToInvoice converts the form to a typed invoice, deriving totals and status.
func (s InvoiceForm) ToInvoice() (domain.Invoice, error) {
	errs := apperrors.FieldErrors{}

	invType := domain.InvoiceType(strings.TrimSpace(s.Type))
	switch invType {
	case domain.InvoiceGovernment:
		requireText(errs, InvoiceFieldPRCenter, "PR center", s.PRCenter)
	case domain.InvoicePrivate:
		requireText(errs, InvoiceFieldBuyer, "buyer", s.Buyer)
	default:
		errs.Add(InvoiceFieldType, "invoice type must be government or private")
	}
	warehouse := requireText(errs, InvoiceFieldWarehouse, "warehouse", s.Warehouse)
	quantity := requireAmount(errs, InvoiceFieldWheatQuantity, "wheat quantity", s.WheatQuantity)
	rate := requireAmount(errs, InvoiceFieldRatePerKg, "rate per kg", s.RatePerKg)
	payment := optionalAmount(errs, InvoiceFieldInitialPayment, "initial payment", s.InitialPayment)

	method := domain.InvoicePaymentMethod(strings.TrimSpace(s.PaymentMethod))
	if method != domain.InvoiceCash && method != domain.InvoiceBank {
		errs.Add(InvoiceFieldPaymentMethod, "payment method must be cash or bank")
	}
	date := requireDate(errs, InvoiceFieldInvoiceDate, "invoice date", s.InvoiceDate)

	if err := errs.OrNil(); err != nil {
		return domain.Invoice{}, err
	}

	totals, err := accounting.ComputeInvoiceTotals(&quantity, &rate, &payment)
	if err != nil {
		return domain.Invoice{}, err
	}
	inv := domain.Invoice{
		Type:            invType,
		Warehouse:       warehouse,
		WheatQuantity:   quantity,
		RatePerKg:       rate,
		TotalAmount:     totals.TotalAmount,
		InitialPayment:  payment,
		RemainingAmount: totals.RemainingAmount,
		Status:          accounting.InvoiceStatus(totals),
		PaymentMethod:   method,
		InvoiceDate:     date,
		Description:     strings.TrimSpace(s.Description),
	}
	if invType == domain.InvoiceGovernment {
		inv.PRCenter = strings.TrimSpace(s.PRCenter)
	} else {
		inv.Buyer = strings.TrimSpace(s.Buyer)
	}
	return inv, nil
}

// Values returns the raw field values, so a failed submission can hand them back unchanged.
func (s InvoiceForm) Values() map[string]string {
	return map[string]string{
		InvoiceFieldType:           s.Type,
		InvoiceFieldBuyer:          s.Buyer,
		InvoiceFieldPRCenter:       s.PRCenter,
		InvoiceFieldWarehouse:      s.Warehouse,
		InvoiceFieldWheatQuantity:  s.WheatQuantity,
		InvoiceFieldRatePerKg:      s.RatePerKg,
		InvoiceFieldInitialPayment: s.InitialPayment,
		InvoiceFieldPaymentMethod:  s.PaymentMethod,
		InvoiceFieldInvoiceDate:    s.InvoiceDate,
		InvoiceFieldDescription:    s.Description,
	}
}
