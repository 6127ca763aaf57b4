package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var today = time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

func TestInvoiceRequest_ToForm(t *testing.T) {
	var req dto.InvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"buyer":"Ali Traders","wheatQuantity":1000,"ratePerKg":"45","initialPayment":null}`), &req))

	form := req.ToForm(today)

	assert.Equal(t, string(domain.InvoicePrivate), form.Type, "blank type keeps the default")
	assert.Equal(t, string(domain.InvoiceCash), form.PaymentMethod)
	assert.Equal(t, "2024-03-20", form.InvoiceDate)
	assert.Equal(t, "1000", form.WheatQuantity)
	require.True(t, form.Totals.Set)
	assert.True(t, decimal.NewFromInt(45000).Equal(form.Totals.TotalAmount))
	assert.True(t, decimal.NewFromInt(45000).Equal(form.Totals.RemainingAmount))
}

func TestSalaryRequest_ToForm(t *testing.T) {
	req := dto.SalaryRequest{Employee: "emp-1", BasicSalary: "30000", Year: "2023"}

	form := req.ToForm(today)

	assert.Equal(t, "3", form.Month, "blank month defaults to the current month")
	assert.Equal(t, "2023", form.Year)
	assert.Equal(t, "emp-1", form.Employee)
}

func TestTransactionRequest_ToForm(t *testing.T) {
	form := dto.TransactionRequest{Amount: "500"}.ToForm(today, "PKR")
	assert.Equal(t, "PKR", form.Currency)
	assert.Equal(t, "500", form.Amount)

	form = dto.TransactionRequest{Currency: "USD"}.ToForm(today, "PKR")
	assert.Equal(t, "USD", form.Currency)
}

func TestExpenseRequest_ToForm(t *testing.T) {
	form := dto.ExpenseRequest{ExpenseAccount: "acc-rent", PaymentMethod: "Bank Transfer"}.ToForm(today)
	assert.Equal(t, "Bank Transfer", form.PaymentMethod)
	assert.Equal(t, "2024-03-20", form.ExpenseDate)
	assert.Equal(t, "acc-rent", form.Values()["expenseAccount"])
}

func TestLedgerQueryParams_ToQuery(t *testing.T) {
	q, err := dto.LedgerQueryParams{
		Page:       3,
		Limit:      20,
		StartDate:  "2024-03-01",
		EndDate:    "2024-03-31",
		Checkpoint: " tok ",
	}.ToQuery()
	require.NoError(t, err)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, "tok", q.CheckpointToken)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), q.StartDate)
	assert.True(t, q.EndDate.After(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.True(t, q.EndDate.Before(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))

	q, err = dto.LedgerQueryParams{}.ToQuery()
	require.NoError(t, err)
	assert.True(t, q.StartDate.IsZero())
	assert.True(t, q.EndDate.IsZero())

	_, err = dto.LedgerQueryParams{StartDate: "yesterday", EndDate: "2024-13-01"}.ToQuery()
	var fe apperrors.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "startDate")
	assert.Contains(t, fe, "endDate")
}

func TestToLoginResponse(t *testing.T) {
	resp := dto.ToLoginResponse(&oauth2.Token{AccessToken: "abc"})
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Nil(t, resp.ExpiresAt, "non-expiring tokens carry no expiry")
}

func TestToStatementResponse_EmptyEntriesAreAnArray(t *testing.T) {
	resp := dto.ToStatementResponse(&portssvc.Statement{}, "PKR")
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"entries":[]`)
}
