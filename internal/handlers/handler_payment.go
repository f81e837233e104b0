package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles manual payments and security deposits.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// RegisterPaymentRoutes registers manual payment and deposit routes.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createManualPayment)
		payments.GET("", h.listManualPayments)
		payments.DELETE("/:id", h.deleteManualPayment)
	}

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.recordDeposit)
		deposits.GET("", h.listDeposits)
	}
}

// createManualPayment godoc
// @Summary Record a manual payment
// @Description Records a cash, cheque or other staff-entered payment and publishes a payment.recorded event
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreateManualPaymentRequest true "Payment details"
// @Success 201 {object} dto.ManualPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown tenant"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createManualPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateManualPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.RecordManualPayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToManualPaymentResponse(payment))
}

// listManualPayments godoc
// @Summary List manual payments
// @Tags payments
// @Produce  json
// @Param   tenantID query string false "Only payments of this tenant"
// @Success 200 {array} dto.ManualPaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listManualPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payments, err := h.paymentService.ListManualPayments(c.Request.Context(), c.Query("tenantID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToManualPaymentResponses(payments))
}

// deleteManualPayment godoc
// @Summary Delete a manual payment
// @Tags payments
// @Param   id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deleteManualPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.paymentService.DeleteManualPayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordDeposit godoc
// @Summary Record a security deposit movement
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   deposit body dto.RecordDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown tenant"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Security BearerAuth
// @Router /deposits [post]
func (h *paymentHandler) recordDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deposit, err := h.paymentService.RecordDeposit(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to record deposit")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// listDeposits godoc
// @Summary List security deposit movements
// @Tags deposits
// @Produce  json
// @Param   tenantID query string false "Only deposits of this tenant"
// @Success 200 {array} dto.DepositResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list deposits"
// @Security BearerAuth
// @Router /deposits [get]
func (h *paymentHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deposits, err := h.paymentService.ListDeposits(c.Request.Context(), c.Query("tenantID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list deposits")
		return
	}
	c.JSON(http.StatusOK, dto.ToDepositResponses(deposits))
}
