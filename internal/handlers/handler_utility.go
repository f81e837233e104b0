package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// utilityHandler handles HTTP requests related to utility charges.
type utilityHandler struct {
	utilityService portssvc.UtilitySvcFacade
}

// RegisterUtilityRoutes registers routes related to utility charges.
func RegisterUtilityRoutes(rg *gin.RouterGroup, utilityService portssvc.UtilitySvcFacade) {
	h := &utilityHandler{utilityService: utilityService}

	charges := rg.Group("/utility-charges")
	{
		charges.POST("", h.createUtilityCharge)
		charges.GET("", h.listUtilityCharges)
		charges.DELETE("/:id", h.deleteUtilityCharge)
	}
}

// createUtilityCharge godoc
// @Summary Create a utility charge
// @Tags utilities
// @Accept  json
// @Produce  json
// @Param   charge body dto.CreateUtilityChargeRequest true "Utility bill"
// @Success 201 {object} dto.UtilityChargeResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown tenant"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create utility charge"
// @Security BearerAuth
// @Router /utility-charges [post]
func (h *utilityHandler) createUtilityCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUtilityChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	charge, err := h.utilityService.CreateUtilityCharge(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create utility charge")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUtilityChargeResponse(charge))
}

// listUtilityCharges godoc
// @Summary List utility charges
// @Tags utilities
// @Produce  json
// @Param   tenantID query string false "Only charges of this tenant"
// @Success 200 {array} dto.UtilityChargeResponse
// @Security BearerAuth
// @Router /utility-charges [get]
func (h *utilityHandler) listUtilityCharges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	charges, err := h.utilityService.ListUtilityCharges(c.Request.Context(), c.Query("tenantID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list utility charges")
		return
	}
	c.JSON(http.StatusOK, dto.ToUtilityChargeResponses(charges))
}

// deleteUtilityCharge godoc
// @Summary Delete a utility charge
// @Tags utilities
// @Param   id path string true "Charge ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Charge not found"
// @Security BearerAuth
// @Router /utility-charges/{id} [delete]
func (h *utilityHandler) deleteUtilityCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.utilityService.DeleteUtilityCharge(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete utility charge")
		return
	}
	c.Status(http.StatusNoContent)
}
