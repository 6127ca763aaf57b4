package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Salary form field names.
const (
	SalaryFieldEmployee      = "employee"
	SalaryFieldMonth         = "month"
	SalaryFieldYear          = "year"
	SalaryFieldBasicSalary   = "basicSalary"
	SalaryFieldAllowances    = "allowances"
	SalaryFieldDeductions    = "deductions"
	SalaryFieldWorkingDays   = "workingDays"
	SalaryFieldTotalDays     = "totalDays"
	SalaryFieldOvertimeHours = "overtimeHours"
	SalaryFieldOvertimeRate  = "overtimeRate"
	SalaryFieldSalaryAccount = "salaryAccount"
	SalaryFieldCashAccount   = "cashAccount"
	SalaryFieldPaymentStatus = "paymentStatus"
	SalaryFieldPaymentMethod = "paymentMethod"
	SalaryFieldWarehouse     = "warehouse"
	SalaryFieldRemarks       = "remarks"
)

// SalaryForm is the state of the monthly salary form.
type SalaryForm struct {
	Employee      string
	Month         string
	Year          string
	BasicSalary   string
	Allowances    string
	Deductions    string
	WorkingDays   string
	TotalDays     string
	OvertimeHours string
	OvertimeRate  string
	SalaryAccount string
	CashAccount   string
	PaymentStatus string
	PaymentMethod string
	Warehouse     string
	Remarks       string

	Breakdown     accounting.SalaryBreakdown
	ProratedBasic decimal.Decimal
	Errors        apperrors.FieldErrors
	Touched       map[string]bool

	today time.Time
}

// NewSalaryForm returns an empty form for the month of today.
func NewSalaryForm(today time.Time) SalaryForm {
	s := SalaryForm{
		Month:         strconv.Itoa(int(today.Month())),
		Year:          strconv.Itoa(today.Year()),
		WorkingDays:   "30",
		TotalDays:     "30",
		PaymentStatus: string(domain.StatusPending),
		PaymentMethod: string(domain.MethodCash),
		Errors:        apperrors.FieldErrors{},
		Touched:       map[string]bool{},
		today:         today,
	}
	return s.recompute()
}

// Reduce implements Reducer.
func (s SalaryForm) Reduce(a Action) SalaryForm {
	return ReduceSalary(s, a)
}

// ReduceSalary returns the state after a. The input state is never modified.
func ReduceSalary(s SalaryForm, a Action) SalaryForm {
	switch a.Kind {
	case Reset:
		return NewSalaryForm(s.today)
	case Touch:
		s.Touched = touch(s.Touched, a.Field)
		return s
	case SetField:
	default:
		return s
	}

	switch a.Field {
	case SalaryFieldEmployee:
		s.Employee = a.Value
	case SalaryFieldMonth:
		s.Month = a.Value
	case SalaryFieldYear:
		s.Year = a.Value
	case SalaryFieldBasicSalary:
		s.BasicSalary = a.Value
	case SalaryFieldAllowances:
		s.Allowances = a.Value
	case SalaryFieldDeductions:
		s.Deductions = a.Value
	case SalaryFieldWorkingDays:
		s.WorkingDays = a.Value
	case SalaryFieldTotalDays:
		s.TotalDays = a.Value
	case SalaryFieldOvertimeHours:
		s.OvertimeHours = a.Value
	case SalaryFieldOvertimeRate:
		s.OvertimeRate = a.Value
	case SalaryFieldSalaryAccount:
		s.SalaryAccount = a.Value
	case SalaryFieldCashAccount:
		s.CashAccount = a.Value
	case SalaryFieldPaymentStatus:
		s.PaymentStatus = a.Value
	case SalaryFieldPaymentMethod:
		s.PaymentMethod = a.Value
	case SalaryFieldWarehouse:
		s.Warehouse = a.Value
	case SalaryFieldRemarks:
		s.Remarks = a.Value
	default:
		s.Errors = unknownField(s.Errors, a.Field)
		return s
	}
	s.Touched = touch(s.Touched, a.Field)
	return s.recompute()
}

// recompute refreshes the live figures. Blank or non-numeric inputs count as zero here;
// Validate is where they are rejected.
func (s SalaryForm) recompute() SalaryForm {
	s.Breakdown = accounting.ComputeNetSalaryRaw(s.BasicSalary, s.Allowances, s.Deductions, s.OvertimeHours, s.OvertimeRate)

	errs := apperrors.FieldErrors{}
	working := optionalInt(errs, SalaryFieldWorkingDays, "working days", s.WorkingDays)
	total := optionalInt(errs, SalaryFieldTotalDays, "total days", s.TotalDays)
	basic := optionalAmount(errs, SalaryFieldBasicSalary, "basic salary", s.BasicSalary)
	optionalAmount(errs, SalaryFieldAllowances, "allowances", s.Allowances)
	optionalAmount(errs, SalaryFieldDeductions, "deductions", s.Deductions)
	optionalAmount(errs, SalaryFieldOvertimeHours, "overtime hours", s.OvertimeHours)
	optionalAmount(errs, SalaryFieldOvertimeRate, "overtime rate", s.OvertimeRate)
	s.ProratedBasic = accounting.ProrateBasic(basic, working, total)
	s.Errors = errs
	return s
}

// FieldError returns the live error of a field once the user has touched it.
func (s SalaryForm) FieldError(field string) string {
	return visible(s.Errors, s.Touched, field)
}

// Validate runs the pre-submit checks.
func (s SalaryForm) Validate() error {
	_, err := s.ToSalaryRecord()
	return err
}

// ToSalaryRecord converts the form to a typed salary record with overtime and net salary filled in.
func (s SalaryForm) ToSalaryRecord() (domain.SalaryRecord, error) {
	errs := apperrors.FieldErrors{}
	rec := domain.SalaryRecord{
		Employee:      strings.TrimSpace(s.Employee),
		Month:         optionalInt(errs, SalaryFieldMonth, "month", s.Month),
		Year:          optionalInt(errs, SalaryFieldYear, "year", s.Year),
		BasicSalary:   requireAmount(errs, SalaryFieldBasicSalary, "basic salary", s.BasicSalary),
		Allowances:    optionalAmount(errs, SalaryFieldAllowances, "allowances", s.Allowances),
		Deductions:    optionalAmount(errs, SalaryFieldDeductions, "deductions", s.Deductions),
		WorkingDays:   optionalInt(errs, SalaryFieldWorkingDays, "working days", s.WorkingDays),
		TotalDays:     optionalInt(errs, SalaryFieldTotalDays, "total days", s.TotalDays),
		OvertimeHours: optionalAmount(errs, SalaryFieldOvertimeHours, "overtime hours", s.OvertimeHours),
		OvertimeRate:  optionalAmount(errs, SalaryFieldOvertimeRate, "overtime rate", s.OvertimeRate),
		SalaryAccount: strings.TrimSpace(s.SalaryAccount),
		CashAccount:   strings.TrimSpace(s.CashAccount),
		PaymentStatus: domain.PaymentStatus(strings.TrimSpace(s.PaymentStatus)),
		PaymentMethod: domain.PaymentMethod(strings.TrimSpace(s.PaymentMethod)),
		Warehouse:     strings.TrimSpace(s.Warehouse),
		Remarks:       strings.TrimSpace(s.Remarks),
	}
	if rec.PaymentMethod != "" && !rec.PaymentMethod.Valid() {
		errs.Add(SalaryFieldPaymentMethod, "unknown payment method")
	}
	if err := accounting.ValidateSalary(rec); err != nil {
		errs.Merge(fieldErrorsOf(err))
	}
	if err := errs.OrNil(); err != nil {
		return domain.SalaryRecord{}, err
	}

	breakdown := accounting.ComputeNetSalary(accounting.SalaryFigures{
		BasicSalary:   rec.BasicSalary,
		Allowances:    rec.Allowances,
		Deductions:    rec.Deductions,
		OvertimeHours: rec.OvertimeHours,
		OvertimeRate:  rec.OvertimeRate,
	})
	rec.OvertimeAmount = breakdown.OvertimeAmount
	rec.NetSalary = breakdown.NetSalary
	return rec, nil
}

// Values returns the raw field values.
func (s SalaryForm) Values() map[string]string {
	return map[string]string{
		SalaryFieldEmployee:      s.Employee,
		SalaryFieldMonth:         s.Month,
		SalaryFieldYear:          s.Year,
		SalaryFieldBasicSalary:   s.BasicSalary,
		SalaryFieldAllowances:    s.Allowances,
		SalaryFieldDeductions:    s.Deductions,
		SalaryFieldWorkingDays:   s.WorkingDays,
		SalaryFieldTotalDays:     s.TotalDays,
		SalaryFieldOvertimeHours: s.OvertimeHours,
		SalaryFieldOvertimeRate:  s.OvertimeRate,
		SalaryFieldSalaryAccount: s.SalaryAccount,
		SalaryFieldCashAccount:   s.CashAccount,
		SalaryFieldPaymentStatus: s.PaymentStatus,
		SalaryFieldPaymentMethod: s.PaymentMethod,
		SalaryFieldWarehouse:     s.Warehouse,
		SalaryFieldRemarks:       s.Remarks,
	}
}
