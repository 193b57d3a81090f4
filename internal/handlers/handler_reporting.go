package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/AhmedMohamed005/erp-sys/internal/apperrors"
	portssvc "github.com/AhmedMohamed005/erp-sys/internal/core/ports/services"
	"github.com/AhmedMohamed005/erp-sys/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// registerReportingRoutes registers routes related to financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/accounts/:id/ledger", h.getAccountLedger)
	}
}

// getTrialBalance godoc
// @Summary Trial balance report
// @Description Generates the trial balance over an optional date window; pass grouped=true to bucket by account type
// @Tags reports
// @Produce  json
// @Param   start_date query string false "Window start (YYYY-MM-DD)"
// @Param   end_date query string false "Window end (YYYY-MM-DD)"
// @Param   grouped query bool false "Group accounts by type"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, _, ok := resolveCaller(c)
	if !ok {
		return
	}

	start, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}

	if c.Query("grouped") == "true" {
		report, err := h.reportingService.GetTrialBalanceGrouped(c.Request.Context(), scope, start, end)
		if err != nil {
			h.respondReportError(c, logger, err, "Failed to generate trial balance")
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	report, err := h.reportingService.GetTrialBalance(c.Request.Context(), scope, start, end)
	if err != nil {
		h.respondReportError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getIncomeStatement godoc
// @Summary Income statement report
// @Description Generates the income statement over an optional date window
// @Tags reports
// @Produce  json
// @Param   start_date query string false "Window start (YYYY-MM-DD)"
// @Param   end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, _, ok := resolveCaller(c)
	if !ok {
		return
	}

	start, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}

	report, err := h.reportingService.GetIncomeStatement(c.Request.Context(), scope, start, end)
	if err != nil {
		h.respondReportError(c, logger, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Balance sheet report
// @Description Generates the balance sheet cumulative to as_of_date (defaults to today)
// @Tags reports
// @Produce  json
// @Param   as_of_date query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, _, ok := resolveCaller(c)
	if !ok {
		return
	}

	asOfPtr, ok := parseDateParam(c, "as_of_date")
	if !ok {
		return
	}
	asOf := time.Now()
	if asOfPtr != nil {
		asOf = *asOfPtr
	}

	report, err := h.reportingService.GetBalanceSheet(c.Request.Context(), scope, asOf)
	if err != nil {
		h.respondReportError(c, logger, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getAccountLedger godoc
// @Summary Account ledger report
// @Description Generates a single account's ledger with running balances over an optional date window
// @Tags reports
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   start_date query string false "Window start (YYYY-MM-DD)"
// @Param   end_date query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/accounts/{id}/ledger [get]
func (h *reportingHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	scope, _, ok := resolveCaller(c)
	if !ok {
		return
	}

	start, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}

	report, err := h.reportingService.GetAccountLedger(c.Request.Context(), scope, accountID, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		h.respondReportError(c, logger, err, "Failed to generate account ledger")
		return
	}
	c.JSON(http.StatusOK, report)
}

// respondReportError maps common report failures onto HTTP responses.
func (h *reportingHandler) respondReportError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	if errors.Is(err, apperrors.ErrNoTenantAssigned) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
