package auth

import (
	"glambook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the admin login and token routes.
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	auth := rg.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/login", controller.Login)
		auth.POST("/refresh", controller.RefreshToken)

		// Protected routes (authentication required)
		protected := auth.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.GET("/me", controller.GetMe)
		}
	}
}
