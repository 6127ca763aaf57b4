package forms

import (
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/money"
)

// Transaction form field names.
const (
	TxnFieldTransactionType = "transactionType"
	TxnFieldDebitAccount    = "debitAccount"
	TxnFieldCreditAccount   = "creditAccount"
	TxnFieldAmount          = "amount"
	TxnFieldTransactionDate = "transactionDate"
	TxnFieldPaymentMethod   = "paymentMethod"
	TxnFieldPaymentStatus   = "paymentStatus"
	TxnFieldDescription     = "description"
	TxnFieldReference       = "reference"
	TxnFieldWarehouse       = "warehouse"
	TxnFieldCurrency        = "currency"
)

// TransactionForm is the state of the general journal transaction form.
type TransactionForm struct {
	TransactionType string
	DebitAccount    string
	CreditAccount   string
	Amount          string
	TransactionDate string
	PaymentMethod   string
	PaymentStatus   string
	Description     string
	Reference       string
	Warehouse       string
	Currency        string

	Errors  apperrors.FieldErrors
	Touched map[string]bool

	today           time.Time
	defaultCurrency string
}

// NewTransactionForm returns an empty form dated today in the given currency.
func NewTransactionForm(today time.Time, currency string) TransactionForm {
	return TransactionForm{
		TransactionType: string(domain.Other),
		TransactionDate: today.Format(dateLayout),
		PaymentMethod:   string(domain.MethodCash),
		PaymentStatus:   string(domain.StatusCompleted),
		Currency:        currency,
		Errors:          apperrors.FieldErrors{},
		Touched:         map[string]bool{},
		today:           today,
		defaultCurrency: currency,
	}
}

// Reduce implements Reducer.
func (s TransactionForm) Reduce(a Action) TransactionForm {
	return ReduceTransaction(s, a)
}

// ReduceTransaction returns the state after a. The input state is never modified.
func ReduceTransaction(s TransactionForm, a Action) TransactionForm {
	switch a.Kind {
	case Reset:
		return NewTransactionForm(s.today, s.defaultCurrency)
	case Touch:
		s.Touched = touch(s.Touched, a.Field)
		return s
	case SetField:
	default:
		return s
	}

	switch a.Field {
	case TxnFieldTransactionType:
		s.TransactionType = a.Value
	case TxnFieldDebitAccount:
		s.DebitAccount = a.Value
	case TxnFieldCreditAccount:
		s.CreditAccount = a.Value
	case TxnFieldAmount:
		s.Amount = a.Value
	case TxnFieldTransactionDate:
		s.TransactionDate = a.Value
	case TxnFieldPaymentMethod:
		s.PaymentMethod = a.Value
	case TxnFieldPaymentStatus:
		s.PaymentStatus = a.Value
	case TxnFieldDescription:
		s.Description = a.Value
	case TxnFieldReference:
		s.Reference = a.Value
	case TxnFieldWarehouse:
		s.Warehouse = a.Value
	case TxnFieldCurrency:
		s.Currency = a.Value
	default:
		s.Errors = unknownField(s.Errors, a.Field)
		return s
	}
	s.Touched = touch(s.Touched, a.Field)
	_, err := s.ToTransaction()
	s.Errors = fieldErrorsOf(err)
	return s
}

// FieldError returns the live error of a field once the user has touched it.
func (s TransactionForm) FieldError(field string) string {
	return visible(s.Errors, s.Touched, field)
}

// Validate runs the pre-submit checks.
func (s TransactionForm) Validate() error {
	_, err := s.ToTransaction()
	return err
}

// ToTransaction converts the form to a typed transaction. Account names are left blank;
// the backend populates them.
func (s TransactionForm) ToTransaction() (domain.Transaction, error) {
	errs := apperrors.FieldErrors{}

	txnType := domain.TransactionType(strings.TrimSpace(s.TransactionType))
	if !txnType.Valid() {
		errs.Add(TxnFieldTransactionType, "unknown transaction type")
	}
	debit := requireText(errs, TxnFieldDebitAccount, "debit account", s.DebitAccount)
	credit := requireText(errs, TxnFieldCreditAccount, "credit account", s.CreditAccount)
	if debit != "" && debit == credit {
		errs.Add(TxnFieldCreditAccount, "debit and credit accounts must differ")
	}
	amount := requireAmount(errs, TxnFieldAmount, "amount", s.Amount)
	date := requireDate(errs, TxnFieldTransactionDate, "transaction date", s.TransactionDate)

	method := domain.PaymentMethod(strings.TrimSpace(s.PaymentMethod))
	if !method.Valid() {
		errs.Add(TxnFieldPaymentMethod, "unknown payment method")
	}
	status := domain.PaymentStatus(strings.TrimSpace(s.PaymentStatus))
	if !status.Valid() {
		errs.Add(TxnFieldPaymentStatus, "unknown payment status")
	}
	description := requireText(errs, TxnFieldDescription, "description", s.Description)

	currency := strings.TrimSpace(s.Currency)
	if currency == "" {
		currency = s.defaultCurrency
	}
	if currency != "" {
		code, err := money.ValidateCurrency(currency)
		if err != nil {
			errs.Add(TxnFieldCurrency, "unknown currency")
		}
		currency = code
	}

	if err := errs.OrNil(); err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionType: txnType,
		DebitAccount:    domain.AccountRef{AccountID: debit},
		CreditAccount:   domain.AccountRef{AccountID: credit},
		Amount:          money.Round(amount),
		TransactionDate: date,
		PaymentMethod:   method,
		PaymentStatus:   status,
		Description:     description,
		Reference:       strings.TrimSpace(s.Reference),
		Warehouse:       strings.TrimSpace(s.Warehouse),
		Currency:        currency,
	}, nil
}

// Values returns the raw field values.
func (s TransactionForm) Values() map[string]string {
	return map[string]string{
		TxnFieldTransactionType: s.TransactionType,
		TxnFieldDebitAccount:    s.DebitAccount,
		TxnFieldCreditAccount:   s.CreditAccount,
		TxnFieldAmount:          s.Amount,
		TxnFieldTransactionDate: s.TransactionDate,
		TxnFieldPaymentMethod:   s.PaymentMethod,
		TxnFieldPaymentStatus:   s.PaymentStatus,
		TxnFieldDescription:     s.Description,
		TxnFieldReference:       s.Reference,
		TxnFieldWarehouse:       s.Warehouse,
		TxnFieldCurrency:        s.Currency,
	}
}
