package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles the bank-import feed.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

// RegisterBankRoutes registers the authenticated bank transaction routes.
func RegisterBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := &bankHandler{bankService: bankService}

	txns := rg.Group("/bank-transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("/import", h.importTransactions)
	}
}

// RegisterBankWebhook registers the import endpoint for the bank pipeline.
// The group is expected to carry API-key auth.
func RegisterBankWebhook(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := &bankHandler{bankService: bankService}
	rg.POST("/bank/transactions", h.importTransactions)
}

// importTransactions godoc
// @Summary Import bank transactions
// @Description Validates raw rows one by one. Bad rows are reported, not fatal. Rows already imported are skipped.
// @Tags bank
// @Accept  json
// @Produce  json
// @Param   batch body dto.BankImportRequest true "Raw bank rows"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to import transactions"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /bank-transactions/import [post]
func (h *bankHandler) importTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BankImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	result, err := h.bankService.ImportTransactions(c.Request.Context(), req.Transactions)
	if err != nil {
		respondError(c, logger, err, "Failed to import transactions")
		return
	}
	logger.Info("Bank import processed",
		slog.Int("imported", result.Imported),
		slog.Int("rejected", len(result.Rejections)))
	c.JSON(http.StatusOK, dto.ToImportResponse(result))
}

// listTransactions godoc
// @Summary List imported bank transactions
// @Tags bank
// @Produce  json
// @Param   from query string true "Window start (YYYY-MM-DD)"
// @Param   to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {array} dto.BankTransactionResponse
// @Failure 400 {object} map[string]string "Invalid window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /bank-transactions [get]
func (h *bankHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, logger, err)
		return
	}
	window, err := domain.ParseWindow(q.From, q.To)
	if err != nil {
		respondError(c, logger, err, "Invalid window")
		return
	}

	txns, err := h.bankService.ListTransactions(c.Request.Context(), window)
	if err != nil {
		respondError(c, logger, err, "Failed to list bank transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankTransactionResponses(txns))
}
