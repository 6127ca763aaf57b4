package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flourmill/mill_ledger/internal/apperrors"
	"github.com/flourmill/mill_ledger/internal/core/domain"
	"github.com/flourmill/mill_ledger/internal/core/forms"
	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/dto"
	"github.com/flourmill/mill_ledger/internal/handlers"
	"github.com/flourmill/mill_ledger/internal/platform/config"
	"github.com/flourmill/mill_ledger/internal/testing/tokentest"
	"github.com/flourmill/mill_ledger/internal/utils/accounting"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockAuth    *MockAuthService
	mockEntries *MockEntryServices
	mockLedger  *MockLedgerService
	jwtSecret   string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAuth = new(MockAuthService)
	suite.mockEntries = new(MockEntryServices)
	suite.mockLedger = new(MockLedgerService)

	cfg := &config.Config{
		JWTSecret:       suite.jwtSecret,
		DefaultCurrency: "PKR",
		IsProduction:    true,
	}
	container := &portssvc.ServiceContainer{
		Auth:        suite.mockAuth,
		Valuation:   suite.mockEntries,
		Payroll:     suite.mockEntries,
		Expense:     suite.mockEntries,
		Transaction: suite.mockEntries,
		Ledger:      suite.mockLedger,
		Dashboard:   suite.mockLedger,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockAuth.AssertExpectations(suite.T())
	suite.mockEntries.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
}

// generateTestToken creates a backend-style bearer token for testing.
func (suite *HandlerTestSuite) generateTestToken() string {
	token, err := tokentest.GenerateJWT("user-1", "clerk@mill.pk", "accountant", suite.jwtSecret, time.Hour)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, url string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// --- Public routes ---

func (suite *HandlerTestSuite) TestHealthAndMetrics() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())

	w = suite.do(http.MethodGet, "/metrics", nil, false)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/dashboard", nil, false)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	expiry := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	suite.mockAuth.On("Login", mock.Anything, "clerk@mill.pk", "secret").
		Return(&oauth2.Token{AccessToken: "abc", TokenType: "Bearer", Expiry: expiry}, nil).Once()

	w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "clerk@mill.pk", Password: "secret"}, false)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("abc", resp.Token)
	suite.Equal("Bearer", resp.TokenType)
	suite.Require().NotNil(resp.ExpiresAt)
	suite.True(expiry.Equal(*resp.ExpiresAt))
}

func (suite *HandlerTestSuite) TestLogin_RejectedCredentials() {
	suite.mockAuth.On("Login", mock.Anything, "clerk@mill.pk", "wrong").
		Return(nil, fmt.Errorf("%w: backend rejected credentials", apperrors.ErrUnauthenticated)).Once()

	w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "clerk@mill.pk", Password: "wrong"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	resp := suite.errorBody(w)
	suite.Equal("Invalid email or password", resp.Error)
	suite.Equal("clerk@mill.pk", resp.Values["email"])
}

func (suite *HandlerTestSuite) TestLogin_InvalidBody() {
	w := suite.do(http.MethodPost, "/auth/login", `{"email":"not-an-email"}`, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.errorBody(w)
	suite.Contains(resp.Fields, "email")
	suite.Contains(resp.Fields, "password")
	suite.mockAuth.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

// --- Invoices ---

func (suite *HandlerTestSuite) TestPreviewInvoice() {
	totals := accounting.InvoiceTotals{
		Set:             true,
		TotalAmount:     decimal.NewFromInt(45000),
		RemainingAmount: decimal.NewFromInt(15000),
	}
	suite.mockEntries.On("PreviewInvoice", mock.Anything, mock.MatchedBy(func(f forms.InvoiceForm) bool {
		return f.WheatQuantity == "1000" && f.RatePerKg == "45" && f.InitialPayment == "30000"
	})).Return(totals, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/preview",
		`{"wheatQuantity": 1000, "ratePerKg": "45", "initialPayment": 30000}`, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.InvoicePreviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Totals.Set)
	suite.True(decimal.NewFromInt(45000).Equal(resp.Totals.TotalAmount))
	suite.Equal(domain.InvoicePending, resp.Status)
	suite.Contains(resp.TotalDisplay, "45,000.00")
}

func (suite *HandlerTestSuite) TestPreviewInvoice_UnsetTotals() {
	suite.mockEntries.On("PreviewInvoice", mock.Anything, mock.Anything).
		Return(accounting.InvoiceTotals{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/preview", `{"wheatQuantity": "1000"}`, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(false, resp["totals"].(map[string]any)["set"])
	suite.NotContains(resp, "status")
	suite.NotContains(resp, "totalDisplay")
}

func (suite *HandlerTestSuite) TestCreateInvoice_Success() {
	invoice := &domain.Invoice{
		InvoiceID:       "inv-1",
		Type:            domain.InvoicePrivate,
		Buyer:           "Ali Traders",
		TotalAmount:     decimal.NewFromInt(45000),
		RemainingAmount: decimal.Zero,
		Status:          domain.InvoiceCompleted,
	}
	suite.mockEntries.On("SubmitInvoice", mock.Anything, mock.MatchedBy(func(f forms.InvoiceForm) bool {
		return f.Buyer == "Ali Traders" && f.Type == string(domain.InvoicePrivate)
	})).Return(invoice, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", dto.InvoiceRequest{
		Buyer:          "Ali Traders",
		Warehouse:      "wh-1",
		WheatQuantity:  "1000",
		RatePerKg:      "45",
		InitialPayment: "45000",
	}, true)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("inv-1", resp["invoiceID"])
	suite.Equal("completed", resp["status"])
}

func (suite *HandlerTestSuite) TestCreateInvoice_ValidationEchoesValues() {
	fieldErrs := apperrors.FieldErrors{forms.InvoiceFieldRatePerKg: "rate per kg must be greater than zero"}
	suite.mockEntries.On("SubmitInvoice", mock.Anything, mock.Anything).Return(nil, fieldErrs).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices",
		`{"buyer": "Ali Traders", "wheatQuantity": 1000, "ratePerKg": "-5"}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.errorBody(w)
	suite.Equal("Validation failed", resp.Error)
	suite.Equal("rate per kg must be greater than zero", resp.Fields[forms.InvoiceFieldRatePerKg])
	suite.Equal("Ali Traders", resp.Values[forms.InvoiceFieldBuyer])
	suite.Equal("1000", resp.Values[forms.InvoiceFieldWheatQuantity])
	suite.Equal("-5", resp.Values[forms.InvoiceFieldRatePerKg])
}

func (suite *HandlerTestSuite) TestCreateInvoice_BindingRejectsUnknownType() {
	w := suite.do(http.MethodPost, "/api/v1/invoices", `{"type": "barter", "buyer": "Ali Traders"}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.errorBody(w)
	suite.Contains(resp.Fields["type"], "government private")
	suite.Equal("Ali Traders", resp.Values[forms.InvoiceFieldBuyer])
}

// --- Salaries ---

func (suite *HandlerTestSuite) TestPreviewSalary() {
	preview := &portssvc.SalaryPreview{
		Breakdown: accounting.SalaryBreakdown{
			OvertimeAmount: decimal.NewFromInt(2000),
			GrossSalary:    decimal.NewFromInt(37000),
			NetSalary:      decimal.NewFromInt(35000),
		},
		ProratedBasic: decimal.NewFromInt(26000),
	}
	suite.mockEntries.On("PreviewSalary", mock.Anything, mock.MatchedBy(func(f forms.SalaryForm) bool {
		return f.BasicSalary == "30000" && f.Month == "3"
	})).Return(preview, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/salaries/preview",
		`{"basicSalary": 30000, "allowances": 5000, "deductions": 2000, "overtimeHours": 10, "overtimeRate": 200, "month": 3}`, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SalaryPreviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(35000).Equal(resp.Breakdown.NetSalary))
	suite.Nil(resp.Accounts)
	suite.Contains(resp.NetDisplay, "35,000.00")
}

func (suite *HandlerTestSuite) TestCreateSalary_WrongAccountType() {
	suite.mockEntries.On("SubmitSalary", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: salary account must be an Expense account", apperrors.ErrInvalidAccountType)).Once()

	w := suite.do(http.MethodPost, "/api/v1/salaries", dto.SalaryRequest{
		Employee:      "emp-1",
		BasicSalary:   "30000",
		SalaryAccount: "acc-cash",
		CashAccount:   "acc-cash",
	}, true)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	resp := suite.errorBody(w)
	suite.Contains(resp.Error, "Expense account")
	suite.Equal("emp-1", resp.Values[forms.SalaryFieldEmployee])
}

// --- Expenses ---

func (suite *HandlerTestSuite) TestPreviewExpense() {
	pair := &domain.AccountPair{
		DebitAccount:  domain.Account{AccountID: "acc-rent", Name: "Rent"},
		CreditAccount: domain.Account{AccountID: "acc-cash", Name: "Cash in Hand"},
	}
	suite.mockEntries.On("PreviewExpense", mock.Anything, mock.MatchedBy(func(f forms.ExpenseForm) bool {
		return f.ExpenseAccount == "acc-rent" && f.PaymentMethod == string(domain.MethodCash)
	})).Return(pair, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/expenses/preview", `{"expenseAccount": "acc-rent", "amount": 1500}`, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ExpensePreviewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("acc-cash", resp.Accounts.CreditAccount.AccountID)
}

func (suite *HandlerTestSuite) TestCreateExpense_NoSourceAccount() {
	suite.mockEntries.On("SubmitExpense", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: no active Bank account", apperrors.ErrNoMatchingAccount)).Once()

	w := suite.do(http.MethodPost, "/api/v1/expenses",
		`{"expenseAccount": "acc-rent", "amount": "1500", "paymentMethod": "Bank Transfer", "description": "rent"}`, true)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	resp := suite.errorBody(w)
	suite.Equal("Bank Transfer", resp.Values[forms.ExpenseFieldPaymentMethod])
}

func (suite *HandlerTestSuite) TestCreateExpense_UnknownPaymentMethod() {
	w := suite.do(http.MethodPost, "/api/v1/expenses", `{"expenseAccount": "acc-rent", "paymentMethod": "Crypto"}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.errorBody(w)
	suite.Contains(resp.Fields, "paymentMethod")
	suite.mockEntries.AssertNotCalled(suite.T(), "SubmitExpense", mock.Anything, mock.Anything)
}

// --- Transactions ---

func (suite *HandlerTestSuite) TestCreateTransaction_Success() {
	txn := &domain.Transaction{
		TransactionID:   "txn-1",
		TransactionType: domain.Transfer,
		DebitAccount:    domain.AccountRef{AccountID: "acc-bank", Name: "Bank"},
		CreditAccount:   domain.AccountRef{AccountID: "acc-cash", Name: "Cash"},
		Amount:          decimal.NewFromInt(10000),
		Currency:        "PKR",
	}
	suite.mockEntries.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(f forms.TransactionForm) bool {
		return f.Currency == "PKR" && f.Amount == "10000" && f.TransactionType == string(domain.Transfer)
	})).Return(txn, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions", dto.TransactionRequest{
		TransactionType: string(domain.Transfer),
		DebitAccount:    "acc-bank",
		CreditAccount:   "acc-cash",
		Amount:          "10000",
		Description:     "deposit",
	}, true)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.TransactionID)
	suite.Contains(resp.AmountDisplay, "10,000.00")
}

func (suite *HandlerTestSuite) TestCreateTransaction_BackendFailures() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "network",
			err:        fmt.Errorf("%w: dial tcp: connection refused", apperrors.ErrNetwork),
			wantStatus: http.StatusBadGateway,
			wantError:  "ERP backend is unreachable",
		},
		{
			name:       "server error with message",
			err:        &apperrors.ServerError{StatusCode: http.StatusInternalServerError, Message: "ledger locked"},
			wantStatus: http.StatusBadGateway,
			wantError:  "ERP backend error: ledger locked",
		},
		{
			name:       "expired session",
			err:        fmt.Errorf("%w: token has expired", apperrors.ErrUnauthenticated),
			wantStatus: http.StatusUnauthorized,
			wantError:  "Session expired, please log in again",
		},
		{
			name:       "unknown account",
			err:        fmt.Errorf("%w: debit account acc-x", apperrors.ErrNoMatchingAccount),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockEntries.On("SubmitTransaction", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/transactions", `{"debitAccount": "acc-x", "amount": 5}`, true)

			suite.Equal(tt.wantStatus, w.Code)
			resp := suite.errorBody(w)
			if tt.wantError != "" {
				suite.Equal(tt.wantError, resp.Error)
			}
			suite.Equal("acc-x", resp.Values[forms.TxnFieldDebitAccount])
			suite.Equal("5", resp.Values[forms.TxnFieldAmount])
		})
	}
}

// --- Ledger ---

func (suite *HandlerTestSuite) TestGetStatement() {
	stmt := &portssvc.Statement{
		Account:        domain.Account{AccountID: "acc-cash", Name: "Cash in Hand"},
		OpeningBalance: decimal.NewFromInt(1000),
		ClosingBalance: decimal.NewFromInt(1300),
		Entries: []domain.LedgerEntry{
			{TransactionID: "t2", Side: domain.SideCredit, Amount: decimal.NewFromInt(200), RunningBalance: decimal.NewFromInt(1300)},
		},
		Page:            2,
		TotalPages:      2,
		TotalEntries:    2,
		Reconciliation:  accounting.Reconcile(decimal.NewFromInt(1300), decimal.NewFromInt(1300)),
		CheckpointToken: "tok",
	}
	suite.mockLedger.On("Statement", mock.Anything, "acc-cash", mock.MatchedBy(func(q portssvc.StatementQuery) bool {
		return q.Page == 2 && q.Limit == 1 && q.Resume &&
			q.StartDate.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
			q.EndDate.Equal(time.Date(2024, time.March, 31, 23, 59, 59, 999999999, time.UTC))
	})).Return(stmt, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-cash/ledger?page=2&limit=1&startDate=2024-03-01&endDate=2024-03-31&resume=true", nil, true)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(1300).Equal(resp.ClosingBalance))
	suite.Len(resp.Entries, 1)
	suite.True(resp.Reconciliation.InSync)
	suite.Equal("tok", resp.CheckpointToken)
	suite.Contains(resp.ClosingDisplay, "1,300.00")
}

func (suite *HandlerTestSuite) TestGetStatement_Errors() {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantField  string
	}{
		{name: "bad start date", query: "?startDate=03/01/2024", wantStatus: http.StatusBadRequest, wantField: "startDate"},
		{name: "bad page", query: "?page=-1", wantStatus: http.StatusBadRequest, wantField: "page"},
		{name: "stale checkpoint", query: "?checkpoint=abc", err: fmt.Errorf("%w: checkpoint is stale", apperrors.ErrConflict), wantStatus: http.StatusConflict},
		{name: "unknown account", query: "", err: &apperrors.ServerError{StatusCode: http.StatusNotFound, Message: "account not found"}, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			if tt.err != nil {
				suite.mockLedger.On("Statement", mock.Anything, "acc-1", mock.Anything).Return(nil, tt.err).Once()
			}

			w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/ledger"+tt.query, nil, true)

			suite.Equal(tt.wantStatus, w.Code, w.Body.String())
			if tt.wantField != "" {
				suite.Contains(suite.errorBody(w).Fields, tt.wantField)
			}
		})
	}
}

func (suite *HandlerTestSuite) TestGetCheckpoint() {
	checkpoint := &domain.BalanceCheckpoint{CheckpointID: "cp-1", AccountID: "acc-1", Balance: decimal.NewFromInt(500), TransactionCount: 3}
	suite.mockLedger.On("LatestCheckpoint", mock.Anything, "acc-1").Return(checkpoint, nil).Once()
	suite.mockLedger.On("LatestCheckpoint", mock.Anything, "acc-2").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/checkpoint", nil, true)
	suite.Equal(http.StatusOK, w.Code)
	var got domain.BalanceCheckpoint
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("cp-1", got.CheckpointID)

	w = suite.do(http.MethodGet, "/api/v1/accounts/acc-2/checkpoint", nil, true)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetDashboard() {
	summary := &domain.FinancialSummary{
		TotalsByType: map[domain.AccountType]decimal.Decimal{domain.Asset: decimal.NewFromInt(150000)},
		CashInHand:   decimal.NewFromInt(50000),
		BankBalance:  decimal.NewFromInt(100000),
		AccountCount: 3,
		ActiveCount:  2,
	}
	suite.mockLedger.On("Summary", mock.Anything).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("PKR", resp.Currency)
	suite.Equal(2, resp.ActiveCount)
	suite.Contains(resp.BankBalanceDisplay, "100,000.00")
}

// --- Run Test Suite ---
func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
