package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/tripweave/tripsplit/cmd/docs"
	"github.com/tripweave/tripsplit/internal/core/domain"
	portssvc "github.com/tripweave/tripsplit/internal/core/ports/services"
	"github.com/tripweave/tripsplit/internal/middleware"
	"github.com/tripweave/tripsplit/internal/platform/config"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidations()

	// Add health check route
	r.GET("/health", getHealth)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// RegisterCustomValidations installs the enum validators referenced by DTO
// binding tags.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("trackingmode", func(fl validator.FieldLevel) bool {
		switch domain.TrackingMode(fl.Field().String()) {
		case domain.TrackIndividuals, domain.TrackFamilies:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("splitmode", func(fl validator.FieldLevel) bool {
		switch domain.SplitMode(fl.Field().String()) {
		case domain.SplitEqual, domain.SplitPercentage, domain.SplitAmount:
			return true
		}
		return false
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply rate limiting and AuthMiddleware to the entire v1 group
	rate, _ := limiter.NewRateFromFormatted(fmt.Sprintf("%d-M", cfg.RateLimitPerMinute))
	ipLimiter := limiter.New(memory.NewStore(), rate)
	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter), middleware.AuthMiddleware(cfg.JWTSecret))

	// Delegate route registration to specific handlers, passing required services
	registerTripRoutes(v1, services.Trip)

	trips := v1.Group("/trips/:tripID")
	registerRosterRoutes(trips, services.Roster)
	registerExpenseRoutes(trips, services.Expense)
	registerSettlementRoutes(trips, services.Settlement, services.Balance)
	registerBalanceRoutes(trips, services.Balance, services.Trip)
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
