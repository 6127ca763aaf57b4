package mapping

import (
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/models"
)

// ToSalaryRequest builds the POST body for a salary record.
func ToSalaryRequest(d domain.SalaryRecord) models.SalaryRequest {
	return models.SalaryRequest{
		Employee:       d.Employee,
		Month:          d.Month,
		Year:           d.Year,
		BasicSalary:    d.BasicSalary,
		Allowances:     d.Allowances,
		Deductions:     d.Deductions,
		WorkingDays:    d.WorkingDays,
		TotalDays:      d.TotalDays,
		OvertimeHours:  d.OvertimeHours,
		OvertimeRate:   d.OvertimeRate,
		OvertimeAmount: d.OvertimeAmount,
		NetSalary:      d.NetSalary,
		SalaryAccount:  d.SalaryAccount,
		CashAccount:    d.CashAccount,
		PaymentStatus:  string(d.PaymentStatus),
		PaymentMethod:  string(d.PaymentMethod),
		Warehouse:      d.Warehouse,
		Remarks:        d.Remarks,
	}
}

// ToInvoiceRequest builds the POST body for a purchase invoice.
func ToInvoiceRequest(d domain.Invoice) models.InvoiceRequest {
	return models.InvoiceRequest{
		Type:            string(d.Type),
		Buyer:           d.Buyer,
		PRCenter:        d.PRCenter,
		Warehouse:       d.Warehouse,
		WheatQuantity:   d.WheatQuantity,
		RatePerKg:       d.RatePerKg,
		TotalAmount:     d.TotalAmount,
		InitialPayment:  d.InitialPayment,
		RemainingAmount: d.RemainingAmount,
		Status:          string(d.Status),
		PaymentMethod:   string(d.PaymentMethod),
		InvoiceDate:     d.InvoiceDate,
		Description:     d.Description,
	}
}
