package domain

import (
	"github.com/shopspring/decimal"
)

// SalaryRecord is one month's payroll entry for an employee. OvertimeAmount and NetSalary are derived.
type SalaryRecord struct {
	SalaryID       string          `json:"salaryID,omitempty"`
	Employee       string          `json:"employee"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	BasicSalary    decimal.Decimal `json:"basicSalary"`
	Allowances     decimal.Decimal `json:"allowances"`
	Deductions     decimal.Decimal `json:"deductions"`
	WorkingDays    int             `json:"workingDays"`
	TotalDays      int             `json:"totalDays"`
	OvertimeHours  decimal.Decimal `json:"overtimeHours"`
	OvertimeRate   decimal.Decimal `json:"overtimeRate"`
	OvertimeAmount decimal.Decimal `json:"overtimeAmount"`
	NetSalary      decimal.Decimal `json:"netSalary"`
	SalaryAccount  string          `json:"salaryAccount"`
	CashAccount    string          `json:"cashAccount"`
	PaymentStatus  PaymentStatus   `json:"paymentStatus"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod,omitempty"`
	Warehouse      string          `json:"warehouse"`
	Remarks        string          `json:"remarks,omitempty"`
}
