package handlers

import (
	"github.com/SscSPs/finacc/cmd/docs"
	portssvc "github.com/SscSPs/finacc/internal/core/ports/services"
	"github.com/SscSPs/finacc/internal/middleware"
	"github.com/SscSPs/finacc/internal/platform/config"
	"github.com/SscSPs/finacc/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	var parserOptions []jwt.ParserOption
	if cfg.JWTIssuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(cfg.JWTIssuer))
	}

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, parserOptions...), middleware.PosthogMiddleware(posthogClient))

	// Every other resource lives under /organizations/:organization_id
	org := registerOrganizationRoutes(v1, service.Organization)
	registerAccountRoutes(org, service.Account, service.Transaction)
	registerCategoryRoutes(org, service.Category)
	registerCounterpartyRoutes(org, service.Counterparty)
	registerTransactionRoutes(org, service.Transaction)
	registerInvoiceRoutes(org, service.Invoice, posthogClient)
	registerReportingRoutes(org, service.Reporting)
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
