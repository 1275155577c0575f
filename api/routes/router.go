// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"glambook/internal/auth"
	"glambook/internal/availability"
	"glambook/internal/bookings"
	"glambook/internal/catalog"
	"glambook/internal/notifications"
	"glambook/internal/payments"
	"glambook/internal/shared/config"
	"glambook/internal/shared/database"
	"glambook/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config        *config.Config
	db            *database.DB
	notifications notifications.NotificationService
	cacheService  cache.Service
}

// NewRouter creates a new router instance. notificationService may be nil
// when the email pipeline is unavailable.
func NewRouter(cfg *config.Config, db *database.DB, notificationService notifications.NotificationService) *Router {
	var cacheService cache.Service
	if db.Redis != nil {
		cacheService = cache.NewService(db.Redis)
	}

	return &Router{
		config:        cfg,
		db:            db,
		notifications: notificationService,
		cacheService:  cacheService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		cat := catalog.Default()

		r.setupCatalogRoutes(api, cat)
		r.setupAuthRoutes(api)
		r.setupBookingRoutes(api, cat)
		r.setupPaymentRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "glambook-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "glambook-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupCatalogRoutes serves the reference data the booking form renders from
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	catalogController := catalog.NewController(cat, r.cacheService)
	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupAuthRoutes configures admin authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authService := auth.NewService(r.config)
	authController := auth.NewController(authService)
	auth.SetupAuthRoutes(rg, authController)
}

// setupBookingRoutes wires the full quote pipeline
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	repo := bookings.NewRepository(r.db.GetPostgreSQL())
	checker := availability.New(r.config.Availability)

	var notifier bookings.QuoteNotifier
	if r.notifications != nil {
		notifier = bookings.NewQuoteNotifier(r.notifications)
	}

	service := bookings.NewService(repo, cat, checker, notifier, r.cacheService,
		r.config.Availability.TravelAllowanceMinutes)
	controller := bookings.NewController(service, r.cacheService)

	bookings.SetupBookingRoutes(rg, controller)
}

// setupPaymentRoutes configures the Stripe deposit flow
func (r *Router) setupPaymentRoutes(rg *gin.RouterGroup) {
	repo := bookings.NewRepository(r.db.GetPostgreSQL())
	service := payments.NewService(repo, r.notifications, r.config.Stripe, r.config.Admin.NotifyEmail)
	controller := payments.NewController(service)

	payments.SetupPaymentRoutes(rg, controller)
}
