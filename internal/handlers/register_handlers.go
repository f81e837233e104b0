package handlers

import (
	"github.com/SscSPs/property_backoffice/cmd/docs"
	portssvc "github.com/SscSPs/property_backoffice/internal/core/ports/services"
	"github.com/SscSPs/property_backoffice/internal/middleware"
	"github.com/SscSPs/property_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterValidators()

	r.GET("/", getHome)
	r.GET("/health", getHealth)

	// Machine-to-machine routes authenticated by API key
	setupHookRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupHookRoutes configures /hooks, used by the bank-import pipeline.
func setupHookRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	hooks := r.Group("/hooks", middleware.APIKeyAuth(cfg.BankImportAPIKeyHash))
	RegisterBankWebhook(hooks, services.Bank)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	RegisterTenantRoutes(v1, service.Tenant)
	RegisterLeaseRoutes(v1, service.Lease)
	RegisterPaymentRoutes(v1, service.Payment)
	RegisterUtilityRoutes(v1, service.Utility)
	RegisterBankRoutes(v1, service.Bank)
	RegisterReportingRoutes(v1, service.Reporting, cfg.CurrencySymbol)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
