package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/flourmill/mill_ledger/internal/core/ports/services"
	"github.com/flourmill/mill_ledger/internal/dto"
	"github.com/flourmill/mill_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for account statements and the dashboard.
type ledgerHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	dashboardService portssvc.DashboardSvc
	currency         string
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, dashboardService portssvc.DashboardSvc, currency string) {
	h := &ledgerHandler{ledgerService: ledgerService, dashboardService: dashboardService, currency: currency}

	accounts := rg.Group("/accounts/:accountID")
	{
		accounts.GET("/ledger", h.getStatement)
		accounts.GET("/checkpoint", h.getCheckpoint)
	}
	rg.GET("/dashboard", h.getDashboard)
}

// getStatement godoc
// @Summary Get an account ledger
// @Description Computes running balances over the full history (or from a checkpoint) and returns one page, newest first.
// @Description Date filters narrow the entries shown; they never change balances.
// @Tags ledger
// @Produce json
// @Param accountID path string true "Account ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Entries per page"
// @Param startDate query string false "First day shown (YYYY-MM-DD)"
// @Param endDate query string false "Last day shown (YYYY-MM-DD)"
// @Param checkpoint query string false "Checkpoint token from an earlier statement"
// @Param resume query bool false "Resume from the latest stored checkpoint"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Checkpoint no longer matches the history"
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/ledger [get]
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	var params dto.LedgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, params.Values())
		return
	}
	query, err := params.ToQuery()
	if err != nil {
		respondError(c, err, params.Values())
		return
	}

	logger = logger.With(slog.String("account_id", accountID))
	stmt, err := h.ledgerService.Statement(c.Request.Context(), accountID, query)
	if err != nil {
		respondError(c, err, params.Values())
		return
	}

	logger.Info("Statement computed",
		slog.Int("entries", stmt.TotalEntries),
		slog.Bool("resumed", stmt.Resumed),
		slog.Bool("in_sync", stmt.Reconciliation.InSync),
	)
	c.JSON(http.StatusOK, dto.ToStatementResponse(stmt, h.currency))
}

// getCheckpoint godoc
// @Summary Get the latest balance checkpoint of an account
// @Tags ledger
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} domain.BalanceCheckpoint
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/checkpoint [get]
func (h *ledgerHandler) getCheckpoint(c *gin.Context) {
	checkpoint, err := h.ledgerService.LatestCheckpoint(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, checkpoint)
}

// getDashboard godoc
// @Summary Get the financial summary
// @Description Totals per account type plus cash in hand and bank balance, from current balances.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ledgerHandler) getDashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary, h.currency))
}
