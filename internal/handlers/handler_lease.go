package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leaseHandler handles HTTP requests related to leases.
type leaseHandler struct {
	leaseService portssvc.LeaseSvcFacade
}

// RegisterLeaseRoutes registers routes related to leases.
func RegisterLeaseRoutes(rg *gin.RouterGroup, leaseService portssvc.LeaseSvcFacade) {
	h := &leaseHandler{leaseService: leaseService}

	leases := rg.Group("/leases")
	{
		leases.POST("", h.createLease)
		leases.GET("", h.listLeases)
		leases.DELETE("/:id", h.deleteLease)
	}
}

// createLease godoc
// @Summary Create a lease
// @Tags leases
// @Accept  json
// @Produce  json
// @Param   lease body dto.CreateLeaseRequest true "Lease details"
// @Success 201 {object} dto.LeaseResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown tenant"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create lease"
// @Security BearerAuth
// @Router /leases [post]
func (h *leaseHandler) createLease(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lease, err := h.leaseService.CreateLease(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create lease")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaseResponse(lease))
}

// listLeases godoc
// @Summary List leases
// @Tags leases
// @Produce  json
// @Param   tenantID query string false "Only leases of this tenant"
// @Success 200 {array} dto.LeaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list leases"
// @Security BearerAuth
// @Router /leases [get]
func (h *leaseHandler) listLeases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	leases, err := h.leaseService.ListLeases(c.Request.Context(), c.Query("tenantID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list leases")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaseResponses(leases))
}

// deleteLease godoc
// @Summary Delete a lease
// @Tags leases
// @Param   id path string true "Lease ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Lease not found"
// @Security BearerAuth
// @Router /leases/{id} [delete]
func (h *leaseHandler) deleteLease(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.leaseService.DeleteLease(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete lease")
		return
	}
	c.Status(http.StatusNoContent)
}
