package dto

import (
	"time"

	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/flourmill/mill_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// SalaryRequest is a submitted payroll form.
type SalaryRequest struct {
	Employee      string          `json:"employee" example:"emp-12"`
	Month         money.RawAmount `json:"month" swaggertype:"string" example:"3"`
	Year          money.RawAmount `json:"year" swaggertype:"string" example:"2024"`
	BasicSalary   money.RawAmount `json:"basicSalary" swaggertype:"string" example:"30000"`
	Allowances    money.RawAmount `json:"allowances" swaggertype:"string" example:"5000"`
	Deductions    money.RawAmount `json:"deductions" swaggertype:"string" example:"2000"`
	WorkingDays   money.RawAmount `json:"workingDays" swaggertype:"string" example:"26"`
	TotalDays     money.RawAmount `json:"totalDays" swaggertype:"string" example:"30"`
	OvertimeHours money.RawAmount `json:"overtimeHours" swaggertype:"string" example:"10"`
	OvertimeRate  money.RawAmount `json:"overtimeRate" swaggertype:"string" example:"200"`
	SalaryAccount string          `json:"salaryAccount"`
	CashAccount   string          `json:"cashAccount"`
	PaymentStatus string          `json:"paymentStatus" binding:"omitempty,oneof=Pending Completed Failed Cancelled" example:"Pending"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,paymentmethod" example:"Cash"`
	Warehouse     string          `json:"warehouse"`
	Remarks       string          `json:"remarks"`
}

// ToForm replays the request onto a fresh salary form.
func (r SalaryRequest) ToForm(today time.Time) forms.SalaryForm {
	return applyFields(forms.NewSalaryForm(today),
		fieldValue{forms.SalaryFieldEmployee, r.Employee},
		raw(forms.SalaryFieldMonth, r.Month),
		raw(forms.SalaryFieldYear, r.Year),
		raw(forms.SalaryFieldBasicSalary, r.BasicSalary),
		raw(forms.SalaryFieldAllowances, r.Allowances),
		raw(forms.SalaryFieldDeductions, r.Deductions),
		raw(forms.SalaryFieldWorkingDays, r.WorkingDays),
		raw(forms.SalaryFieldTotalDays, r.TotalDays),
		raw(forms.SalaryFieldOvertimeHours, r.OvertimeHours),
		raw(forms.SalaryFieldOvertimeRate, r.OvertimeRate),
		fieldValue{forms.SalaryFieldSalaryAccount, r.SalaryAccount},
		fieldValue{forms.SalaryFieldCashAccount, r.CashAccount},
		fieldValue{forms.SalaryFieldPaymentStatus, r.PaymentStatus},
		fieldValue{forms.SalaryFieldPaymentMethod, r.PaymentMethod},
		fieldValue{forms.SalaryFieldWarehouse, r.Warehouse},
		fieldValue{forms.SalaryFieldRemarks, r.Remarks},
	)
}

// SalaryPreviewResponse is the live view of a salary form.
type SalaryPreviewResponse struct {
	Breakdown     accounting.SalaryBreakdown `json:"breakdown"`
	ProratedBasic decimal.Decimal            `json:"proratedBasic"`
	Accounts      *domain.AccountPair        `json:"accounts,omitempty"`
	NetDisplay    string                     `json:"netDisplay"`
}

// ToSalaryPreviewResponse formats a salary preview.
func ToSalaryPreviewResponse(p *portssvc.SalaryPreview, currency string) SalaryPreviewResponse {
	return SalaryPreviewResponse{
		Breakdown:     p.Breakdown,
		ProratedBasic: p.ProratedBasic,
		Accounts:      p.Accounts,
		NetDisplay:    money.Format(p.Breakdown.NetSalary, currency),
	}
}

// SalaryResponse is a posted salary record.
type SalaryResponse struct {
	domain.SalaryRecord
	NetDisplay string `json:"netDisplay"`
}

// ToSalaryResponse converts a posted salary record.
func ToSalaryResponse(rec *domain.SalaryRecord, currency string) SalaryResponse {
	return SalaryResponse{SalaryRecord: *rec, NetDisplay: money.Format(rec.NetSalary, currency)}
}
