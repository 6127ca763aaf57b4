package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRequest is the body of POST /api/financial/salaries.
// NetSalary and OvertimeAmount are advisory; the backend recomputes them.
type SalaryRequest struct {
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
	PaymentStatus  string          `json:"paymentStatus"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	Warehouse      string          `json:"warehouse"`
	Remarks        string          `json:"remarks,omitempty"`
}

// Salary is a stored salary document.
type Salary struct {
	ID        string              `json:"_id"`
	Employee  Ref                 `json:"employee"`
	Month     int                 `json:"month"`
	Year      int                 `json:"year"`
	NetSalary decimal.NullDecimal `json:"netSalary"`
	Status    string              `json:"paymentStatus"`
}

// SalaryEnvelope is the response of a successful salary post.
type SalaryEnvelope struct {
	Message string `json:"message"`
	Salary  Salary `json:"salary"`
}

// InvoiceRequest is the body of POST /api/invoice.
type InvoiceRequest struct {
	Type            string          `json:"type"`
	Buyer           string          `json:"buyer,omitempty"`
	PRCenter        string          `json:"prCenter,omitempty"`
	Warehouse       string          `json:"warehouse"`
	WheatQuantity   decimal.Decimal `json:"wheatQuantity"`
	RatePerKg       decimal.Decimal `json:"ratePerKg"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	InitialPayment  decimal.Decimal `json:"initialPayment"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	InvoiceDate     time.Time       `json:"invoiceDate"`
	Description     string          `json:"description,omitempty"`
}

// Invoice is a stored invoice document.
type Invoice struct {
	ID              string              `json:"_id"`
	InvoiceNumber   string              `json:"invoiceNumber"`
	Type            string              `json:"type"`
	TotalAmount     decimal.NullDecimal `json:"totalAmount"`
	RemainingAmount decimal.NullDecimal `json:"remainingAmount"`
	Status          string              `json:"status"`
}

// InvoiceEnvelope is the response of a successful invoice post.
type InvoiceEnvelope struct {
	Message string  `json:"message"`
	Invoice Invoice `json:"invoice"`
}
