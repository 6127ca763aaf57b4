package forms

import (
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/flourmill/mill_ledger/internal/utils/money"
)

// Expense form field names.
const (
	ExpenseFieldExpenseAccount = "expenseAccount"
	ExpenseFieldAmount         = "amount"
	ExpenseFieldPaymentMethod  = "paymentMethod"
	ExpenseFieldExpenseDate    = "expenseDate"
	ExpenseFieldDescription    = "description"
	ExpenseFieldReference      = "reference"
	ExpenseFieldWarehouse      = "warehouse"
)

// ExpenseForm is the state of the expense entry form.
type ExpenseForm struct {
	ExpenseAccount string
	Amount         string
	PaymentMethod  string
	ExpenseDate    string
	Description    string
	Reference      string
	Warehouse      string

	Errors  apperrors.FieldErrors
	Touched map[string]bool

	today time.Time
}

// NewExpenseForm returns an empty cash expense dated today.
func NewExpenseForm(today time.Time) ExpenseForm {
	return ExpenseForm{
		PaymentMethod: string(domain.MethodCash),
		ExpenseDate:   today.Format(dateLayout),
		Errors:        apperrors.FieldErrors{},
		Touched:       map[string]bool{},
		today:         today,
	}
}

// Reduce implements Reducer.
func (s ExpenseForm) Reduce(a Action) ExpenseForm {
	return ReduceExpense(s, a)
}

// ReduceExpense returns the state after a. The input state is never modified.
func ReduceExpense(s ExpenseForm, a Action) ExpenseForm {
	switch a.Kind {
	case Reset:
		return NewExpenseForm(s.today)
	case Touch:
		s.Touched = touch(s.Touched, a.Field)
		return s
	case SetField:
	default:
		return s
	}

	switch a.Field {
	case ExpenseFieldExpenseAccount:
		s.ExpenseAccount = a.Value
	case ExpenseFieldAmount:
		s.Amount = a.Value
	case ExpenseFieldPaymentMethod:
		s.PaymentMethod = a.Value
	case ExpenseFieldExpenseDate:
		s.ExpenseDate = a.Value
	case ExpenseFieldDescription:
		s.Description = a.Value
	case ExpenseFieldReference:
		s.Reference = a.Value
	case ExpenseFieldWarehouse:
		s.Warehouse = a.Value
	default:
		s.Errors = unknownField(s.Errors, a.Field)
		return s
	}
	s.Touched = touch(s.Touched, a.Field)
	_, err := s.ToExpense()
	s.Errors = fieldErrorsOf(err)
	return s
}

// FieldError returns the live error of a field once the user has touched it.
func (s ExpenseForm) FieldError(field string) string {
	return visible(s.Errors, s.Touched, field)
}

// Validate runs the pre-submit checks.
func (s ExpenseForm) Validate() error {
	_, err := s.ToExpense()
	return err
}

// ToExpense converts the form to a typed expense. Only Cash and Bank Transfer are accepted,
// since those are the methods with a payment-source account.
func (s ExpenseForm) ToExpense() (domain.ExpenseEntry, error) {
	errs := apperrors.FieldErrors{}
	account := requireText(errs, ExpenseFieldExpenseAccount, "expense account", s.ExpenseAccount)
	amount := requireAmount(errs, ExpenseFieldAmount, "amount", s.Amount)
	method := domain.PaymentMethod(strings.TrimSpace(s.PaymentMethod))
	if _, err := accounting.SourceCategory(method); err != nil {
		errs.Add(ExpenseFieldPaymentMethod, "payment method must be Cash or Bank Transfer")
	}
	date := requireDate(errs, ExpenseFieldExpenseDate, "expense date", s.ExpenseDate)
	description := requireText(errs, ExpenseFieldDescription, "description", s.Description)

	if err := errs.OrNil(); err != nil {
		return domain.ExpenseEntry{}, err
	}
	return domain.ExpenseEntry{
		ExpenseAccount: account,
		Amount:         money.Round(amount),
		PaymentMethod:  method,
		ExpenseDate:    date,
		Description:    description,
		Reference:      strings.TrimSpace(s.Reference),
		Warehouse:      strings.TrimSpace(s.Warehouse),
	}, nil
}

// Values returns the raw field values.
func (s ExpenseForm) Values() map[string]string {
	return map[string]string{
		ExpenseFieldExpenseAccount: s.ExpenseAccount,
		ExpenseFieldAmount:         s.Amount,
		ExpenseFieldPaymentMethod:  s.PaymentMethod,
		ExpenseFieldExpenseDate:    s.ExpenseDate,
		ExpenseFieldDescription:    s.Description,
		ExpenseFieldReference:      s.Reference,
		ExpenseFieldWarehouse:      s.Warehouse,
	}
}
