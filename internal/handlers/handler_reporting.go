package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/export"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/SscSPs/property_backoffice/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	exportOpts       export.Options
	now              func() time.Time
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, currencySymbol string) {
	h := &reportingHandler{
		reportingService: reportingService,
		exportOpts:       export.Options{CurrencySymbol: currencySymbol},
		now:              time.Now,
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/tenants/:id/ledger", h.getTenantLedger)
		reports.GET("/tenants/:id/utility-charges", h.getUtilityCharges)
		reports.GET("/deposits", h.getDeposits)
		reports.GET("/unit-financials", h.getUnitFinancials)
		reports.GET("/overdue", h.getOverdue)
	}
}

// windowAndFormat binds the shared from/to/format query parameters.
func windowAndFormat(c *gin.Context, logger *slog.Logger) (domain.Window, export.Format, bool) {
	var q dto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err)
		return domain.Window{}, "", false
	}
	window, err := domain.ParseWindow(q.From, q.To)
	if err != nil {
		respondError(c, logger, err, "Invalid window")
		return domain.Window{}, "", false
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, logger, err, "Invalid format")
		return domain.Window{}, "", false
	}
	return window, format, true
}

// render writes body as JSON, or the table as a downloadable document.
func (h *reportingHandler) render(c *gin.Context, logger *slog.Logger, format export.Format, body any, table export.Table, fileName string) {
	result := metrics.ResultSuccess
	if len(table.Rows) == 0 {
		result = metrics.ResultEmpty
	}
	if format == export.FormatJSON {
		metrics.IncStatementExport(string(format), result)
		c.JSON(http.StatusOK, body)
		return
	}

	data, err := export.Render(format, table, h.exportOpts)
	if err != nil {
		metrics.IncStatementExport(string(format), metrics.ResultError)
		respondError(c, logger, err, "Failed to export report")
		return
	}
	metrics.IncStatementExport(string(format), result)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, format.ContentType(), data)
}

// getTenantLedger godoc
// @Summary Tenant ledger
// @Description Rent charges netted against bank and manual payments over the window, with a running balance
// @Tags reports
// @Produce json
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Tenant ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Param includeDeposits query bool false "Net security deposits as payments"
// @Param format query string false "json, csv, pdf or xlsx" default(json)
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/tenants/{id}/ledger [get]
func (h *reportingHandler) getTenantLedger(c *gin.Context) {
	tenantID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", tenantID))
	window, format, ok := windowAndFormat(c, logger)
	if !ok {
		return
	}
	includeDeposits, _ := strconv.ParseBool(c.DefaultQuery("includeDeposits", "false"))

	logger.Info("Received request to generate tenant ledger", slog.String("window", window.String()), slog.String("format", string(format)))
	report, err := h.reportingService.TenantLedger(c.Request.Context(), tenantID, window, domain.LedgerOptions{IncludeDeposits: includeDeposits})
	if err != nil {
		respondError(c, logger, err, "Failed to generate tenant ledger")
		return
	}

	h.render(c, logger, format,
		dto.ToStatementResponse(report),
		export.StatementTable("Tenant Ledger", report.Statement),
		export.FileName("ledger-"+report.Statement.TenantID, window, format))
}

// getUtilityCharges godoc
// @Summary Tenant utility charges
// @Description Stored utility bills for the tenant with a running total
// @Tags reports
// @Produce json
// @Param id path string true "Tenant ID"
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Param format query string false "json, csv, pdf or xlsx" default(json)
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Security BearerAuth
// @Router /reports/tenants/{id}/utility-charges [get]
func (h *reportingHandler) getUtilityCharges(c *gin.Context) {
	tenantID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", tenantID))
	window, format, ok := windowAndFormat(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.UtilityChargesReport(c.Request.Context(), tenantID, window)
	if err != nil {
		respondError(c, logger, err, "Failed to generate utility report")
		return
	}

	h.render(c, logger, format,
		dto.ToStatementResponse(report),
		export.StatementTable("Utility Charges", report.Statement),
		export.FileName("utilities-"+report.Statement.TenantID, window, format))
}

// getDeposits godoc
// @Summary Security deposits
// @Description Deposit movements per tenant. Tenants without stored records show their lease deposit.
// @Tags reports
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Param propertyID query string false "Only this property"
// @Param format query string false "json, csv, pdf or xlsx" default(json)
// @Success 200 {object} dto.DepositsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/deposits [get]
func (h *reportingHandler) getDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	window, format, ok := windowAndFormat(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.DepositsReport(c.Request.Context(), window, c.Query("propertyID"))
	if err != nil {
		respondError(c, logger, err, "Failed to generate deposits report")
		return
	}

	h.render(c, logger, format,
		dto.ToDepositsResponse(report),
		export.DepositsTable(*report),
		export.FileName("deposits", window, format))
}

// getUnitFinancials godoc
// @Summary Unit financials
// @Description Charges, payments and balance of every rented unit over the window
// @Tags reports
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD)"
// @Param propertyID query string false "Only this property"
// @Param format query string false "json, csv, pdf or xlsx" default(json)
// @Success 200 {object} dto.UnitFinancialsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/unit-financials [get]
func (h *reportingHandler) getUnitFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	window, format, ok := windowAndFormat(c, logger)
	if !ok {
		return
	}
	propertyID := c.Query("propertyID")

	report, err := h.reportingService.UnitFinancials(c.Request.Context(), propertyID, window)
	if err != nil {
		respondError(c, logger, err, "Failed to generate unit financials")
		return
	}

	h.render(c, logger, format,
		dto.ToUnitFinancialsResponse(report),
		export.UnitFinancialsTable(*report),
		export.FileName("unit-financials", window, format))
}

// getOverdue godoc
// @Summary Overdue rent
// @Description Tenants with a positive balance as of a day, most overdue first
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param propertyID query string false "Only this property"
// @Param format query string false "json, csv, pdf or xlsx" default(json)
// @Success 200 {object} dto.OverdueResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/overdue [get]
func (h *reportingHandler) getOverdue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	asOfStr := c.DefaultQuery("asOf", domain.FormatDay(h.now()))
	asOf, err := domain.ParseDay(asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, logger, err, "Invalid format")
		return
	}

	report, err := h.reportingService.OverdueRent(c.Request.Context(), asOf, c.Query("propertyID"))
	if err != nil {
		respondError(c, logger, err, "Failed to generate overdue report")
		return
	}

	h.render(c, logger, format,
		dto.ToOverdueResponse(report),
		export.OverdueTable(*report),
		export.FileName("overdue", domain.Window{Start: asOf, End: asOf}, format))
}
