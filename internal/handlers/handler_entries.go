package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/dto"
	"github.com/flourmill/mill_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// today is the calendar date forms default to.
var today = func() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// entryHandler serves the data-entry forms: invoices, salaries, expenses and general transactions.
type entryHandler struct {
	valuation   portssvc.ValuationSvc
	payroll     portssvc.PayrollSvc
	expense     portssvc.ExpenseSvc
	transaction portssvc.TransactionSvc
	currency    string
}

func registerEntryRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, currency string) {
	h := &entryHandler{
		valuation:   services.Valuation,
		payroll:     services.Payroll,
		expense:     services.Expense,
		transaction: services.Transaction,
		currency:    currency,
	}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/preview", h.previewInvoice)
		invoices.POST("", h.createInvoice)
	}
	salaries := rg.Group("/salaries")
	{
		salaries.POST("/preview", h.previewSalary)
		salaries.POST("", h.createSalary)
	}
	expenses := rg.Group("/expenses")
	{
		expenses.POST("/preview", h.previewExpense)
		expenses.POST("", h.createExpense)
	}
	rg.POST("/transactions", h.createTransaction)
}

// previewInvoice godoc
// @Summary Preview invoice totals
// @Description Computes the total and remaining amounts of a wheat purchase form without posting it.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.InvoiceRequest true "Invoice form"
// @Success 200 {object} dto.InvoicePreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices/preview [post]
func (h *entryHandler) previewInvoice(c *gin.Context) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, req.ToForm(today()).Values())
		return
	}
	form := req.ToForm(today())

	totals, err := h.valuation.PreviewInvoice(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, form.Values())
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoicePreviewResponse(totals, h.currency))
}

// createInvoice godoc
// @Summary Post a wheat purchase invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.InvoiceRequest true "Invoice form"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed; values are echoed back"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *entryHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, req.ToForm(today()).Values())
		return
	}
	form := req.ToForm(today())

	invoice, err := h.valuation.SubmitInvoice(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, form.Values())
		return
	}
	logger.Info("Invoice posted", slog.String("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice, h.currency))
}

// previewSalary godoc
// @Summary Preview a salary computation
// @Description Computes overtime, gross and net salary. Accounts are resolved once both are selected.
// @Tags salaries
// @Accept json
// @Produce json
// @Param salary body dto.SalaryRequest true "Salary form"
// @Success 200 {object} dto.SalaryPreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /salaries/preview [post]
func (h *entryHandler) previewSalary(c *gin.Context) {
	var req dto.SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, req.ToForm(today()).Values())
		return
	}
	form := req.ToForm(today())

	preview, err := h.payroll.PreviewSalary(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, form.Values())
		return
	}
	c.JSON(http.StatusOK, dto.ToSalaryPreviewResponse(preview, h.currency))
}

// createSalary godoc
// @Summary Post a salary record
// @Tags salaries
// @Accept json
// @Produce json
// @Param salary body dto.SalaryRequest true "Salary form"
// @Success 201 {object} dto.SalaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Salary or cash account has the wrong type"
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /salaries [post]
func (h *entryHandler) createSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, req.ToForm(today()).Values())
		return
	}
	form := req.ToForm(today())

	record, err := h.payroll.SubmitSalary(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, form.Values())
		return
	}
	logger.Info("Salary posted", slog.String("salary_id", record.SalaryID))
	c.JSON(http.StatusCreated, dto.ToSalaryResponse(record, h.currency))
}

// previewExpense godoc
// @Summary Preview the accounts an expense posts to
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.ExpenseRequest true "Expense form"
// @Success 200 {object} dto.ExpensePreviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "No active source account for the payment method"
// @Security BearerAuth
// @Router /expenses/preview [post]
func (h *entryHandler) previewExpense(c *gin.Context) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, req.ToForm(today()).Values())
		return
	}
	form := req.ToForm(today())

	pair, err := h.expense.PreviewExpense(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, form.Values())
		return
	}
	c.JSON(http.StatusOK, dto.ExpensePreviewResponse{Accounts: *pair})
}

// createExpense godoc
// @Summary Post an expense
// @Description Posts the expense as a Payment from the Cash or Bank account matching the payment method.
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.ExpenseRequest true "Expense form"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *entryHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, req.ToForm(today()).Values())
		return
	}
	form := req.ToForm(today())

	txn, err := h.expense.SubmitExpense(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, form.Values())
		return
	}
	logger.Info("Expense posted", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, h.currency))
}

// createTransaction godoc
// @Summary Post a general transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionRequest true "Transaction form"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Unknown account"
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *entryHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, req.ToForm(today(), h.currency).Values())
		return
	}
	form := req.ToForm(today(), h.currency)

	txn, err := h.transaction.SubmitTransaction(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, form.Values())
		return
	}
	logger.Info("Transaction posted", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, h.currency))
}
