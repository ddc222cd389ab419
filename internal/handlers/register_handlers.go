package handlers

import (
	"net/http"

	"github.com/SscSPs/asset_management_app/cmd/docs"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/SscSPs/asset_management_app/internal/middleware"
	"github.com/SscSPs/asset_management_app/internal/platform/config"
	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Routes live at the root: public, verified (any signed-in caller) and hr (verified plus the hr role).
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	verifier gateways.IdentityVerifier,
	m *metrics.Metrics,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	limits := listLimiter{max: cfg.ListMaxLimit}

	public := r.Group("")
	verified := r.Group("", middleware.VerifyIdentity(verifier))
	hr := r.Group("", middleware.VerifyIdentity(verifier), middleware.RequireRole(services.Auth, domain.RoleHR))

	registerUserRoutes(public, verified, services.User)
	registerPackageRoutes(public, services.Package, limits)
	registerPaymentRoutes(verified, hr, services.Payment, limits)
	registerAssetRoutes(verified, hr, services.Asset, limits)
	registerRequestRoutes(verified, hr, services.Request, limits)
	registerAssignmentRoutes(verified, services.Assignment, services.Auth, limits)
	registerTeamRoutes(hr, services.Affiliation, limits)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
