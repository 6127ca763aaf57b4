package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType discriminates government (PR center) and private wheat purchases.
type InvoiceType string

const (
	InvoiceGovernment InvoiceType = "government"
	InvoicePrivate    InvoiceType = "private"
)

// InvoiceStatus is the settlement status of a purchase invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoiceCompleted InvoiceStatus = "completed"
)

// InvoicePaymentMethod is how the initial payment of an invoice is made.
type InvoicePaymentMethod string

const (
	InvoiceCash InvoicePaymentMethod = "cash"
	InvoiceBank InvoicePaymentMethod = "bank"
)

// Invoice is a wheat purchase invoice. TotalAmount and RemainingAmount are derived.
type Invoice struct {
	InvoiceID       string               `json:"invoiceID,omitempty"`
	Type            InvoiceType          `json:"type"`
	Buyer           string               `json:"buyer,omitempty"`
	PRCenter        string               `json:"prCenter,omitempty"`
	Warehouse       string               `json:"warehouse"`
	WheatQuantity   decimal.Decimal      `json:"wheatQuantity"`
	RatePerKg       decimal.Decimal      `json:"ratePerKg"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	InitialPayment  decimal.Decimal      `json:"initialPayment"`
	RemainingAmount decimal.Decimal      `json:"remainingAmount"`
	Status          InvoiceStatus        `json:"status"`
	PaymentMethod   InvoicePaymentMethod `json:"paymentMethod"`
	InvoiceDate     time.Time            `json:"invoiceDate"`
	Description     string               `json:"description,omitempty"`
}
