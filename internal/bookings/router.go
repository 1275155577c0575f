package bookings

import (
	"glambook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the public quote routes and the admin
// booking-management routes.
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public quote flow: submit the booking form, retrieve the quote by ref.
	quotes := rg.Group("/quotes")
	{
		quotes.POST("", controller.SubmitQuote)    // POST /api/v1/quotes
		quotes.GET("/:id", controller.GetQuote)    // GET  /api/v1/quotes/:id
	}

	// Admin management surface.
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/bookings", controller.ListBookings)                 // GET    /api/v1/admin/bookings
		admin.GET("/bookings/:id", controller.GetBookingDetail)         // GET    /api/v1/admin/bookings/:id
		admin.PATCH("/bookings/:id/status", controller.UpdateStatus)    // PATCH  /api/v1/admin/bookings/:id/status
		admin.DELETE("/bookings/:id", controller.DeleteBooking)         // DELETE /api/v1/admin/bookings/:id
		admin.GET("/dashboard", controller.Dashboard)                   // GET    /api/v1/admin/dashboard
	}
}
