package accounting

import (
	"strings"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// SalaryFigures are the numeric inputs of a salary computation. Zero values mean "not entered".
type SalaryFigures struct {
	BasicSalary   decimal.Decimal
	Allowances    decimal.Decimal
	Deductions    decimal.Decimal
	OvertimeHours decimal.Decimal
	OvertimeRate  decimal.Decimal
}

// SalaryBreakdown is the result of a salary computation.
// Negative is set when deductions exceed earnings; the figure is reported as is, never clamped.
type SalaryBreakdown struct {
	OvertimeAmount decimal.Decimal `json:"overtimeAmount"`
	GrossSalary    decimal.Decimal `json:"grossSalary"`
	NetSalary      decimal.Decimal `json:"netSalary"`
	Negative       bool            `json:"negative"`
}

// ComputeNetSalary derives overtime = hours*rate and net = basic + allowances + overtime - deductions.
func ComputeNetSalary(f SalaryFigures) SalaryBreakdown {
	overtime := money.Round(f.OvertimeHours.Mul(f.OvertimeRate))
	gross := f.BasicSalary.Add(f.Allowances).Add(overtime)
	net := money.Round(gross.Sub(f.Deductions))
	return SalaryBreakdown{
		OvertimeAmount: overtime,
		GrossSalary:    money.Round(gross),
		NetSalary:      net,
		Negative:       net.IsNegative(),
	}
}

// ComputeNetSalaryRaw computes from raw form text. Unset or non-numeric inputs count as zero,
// unlike invoice valuation where they leave the totals unset.
func ComputeNetSalaryRaw(basic, allowances, deductions, overtimeHours, overtimeRate string) SalaryBreakdown {
	return ComputeNetSalary(SalaryFigures{
		BasicSalary:   money.ParseOrZero(basic),
		Allowances:    money.ParseOrZero(allowances),
		Deductions:    money.ParseOrZero(deductions),
		OvertimeHours: money.ParseOrZero(overtimeHours),
		OvertimeRate:  money.ParseOrZero(overtimeRate),
	})
}

// ProrateBasic returns basic * workingDays / totalDays, for display next to the net salary.
// It never replaces BasicSalary in the net salary computation.
func ProrateBasic(basic decimal.Decimal, workingDays, totalDays int) decimal.Decimal {
	if totalDays <= 0 {
		return decimal.Zero
	}
	return money.Round(basic.Mul(decimal.NewFromInt(int64(workingDays))).Div(decimal.NewFromInt(int64(totalDays))))
}

// ValidateSalary runs the pre-submit checks of a salary record.
func ValidateSalary(r domain.SalaryRecord) error {
	errs := apperrors.FieldErrors{}
	required := map[string]string{
		"employee":      r.Employee,
		"salaryAccount": r.SalaryAccount,
		"cashAccount":   r.CashAccount,
		"warehouse":     r.Warehouse,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs.Add(field, field+" is required")
		}
	}
	if !r.BasicSalary.IsPositive() {
		errs.Add("basicSalary", "basic salary must be greater than zero")
	}
	if r.Allowances.IsNegative() {
		errs.Add("allowances", "allowances must not be negative")
	}
	if r.Deductions.IsNegative() {
		errs.Add("deductions", "deductions must not be negative")
	}
	if r.OvertimeHours.IsNegative() {
		errs.Add("overtimeHours", "overtime hours must not be negative")
	}
	if r.OvertimeRate.IsNegative() {
		errs.Add("overtimeRate", "overtime rate must not be negative")
	}
	if r.Month < 1 || r.Month > 12 {
		errs.Add("month", "month must be between 1 and 12")
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs.Add("year", "year must be between 2000 and 2100")
	}
	if r.WorkingDays < 1 || r.WorkingDays > 31 {
		errs.Add("workingDays", "working days must be between 1 and 31")
	}
	if r.TotalDays < 28 || r.TotalDays > 31 {
		errs.Add("totalDays", "total days must be between 28 and 31")
	} else if r.WorkingDays > r.TotalDays {
		errs.Add("workingDays", "working days cannot exceed total days")
	}
	if r.PaymentStatus != "" && !r.PaymentStatus.Valid() {
		errs.Add("paymentStatus", "unknown payment status")
	}
	return errs.OrNil()
}
