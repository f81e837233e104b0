package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/dto"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests related to tenants.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// RegisterTenantRoutes registers routes related to tenants.
func RegisterTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listTenants)
		tenants.GET("/:id", h.getTenant)
		tenants.PUT("/:id", h.updateTenant)
		tenants.DELETE("/:id", h.deleteTenant)
	}
}

// createTenant godoc
// @Summary Create a tenant
// @Description Creates a tenant. A numeric id such as 10.0 is stored as 10; an empty id is generated.
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Tenant id already exists"
// @Failure 500 {object} map[string]string "Failed to create tenant"
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create tenant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listTenants godoc
// @Summary List tenants
// @Description Lists tenants ordered by name, one page at a time
// @Tags tenants
// @Produce  json
// @Param   propertyID query string false "Only tenants of this property"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTenantsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list tenants"
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTenantsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	tenants, nextToken, err := h.tenantService.ListTenants(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list tenants")
		return
	}
	logger.Debug("Tenants listed", slog.Int("count", len(tenants)))
	c.JSON(http.StatusOK, dto.ToListTenantsResponse(tenants, nextToken))
}

// getTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce  json
// @Param   id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve tenant"
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", c.Param("id")))

	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateTenant godoc
// @Summary Update a tenant
// @Description Updates the fields present in the body
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   id path string true "Tenant ID"
// @Param   tenant body dto.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to update tenant"
// @Security BearerAuth
// @Router /tenants/{id} [put]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", c.Param("id")))
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// deleteTenant godoc
// @Summary Delete a tenant
// @Tags tenants
// @Param   id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to delete tenant"
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *tenantHandler) deleteTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("tenant_id", c.Param("id")))

	if err := h.tenantService.DeleteTenant(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete tenant")
		return
	}
	c.Status(http.StatusNoContent)
}
