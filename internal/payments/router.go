package payments

import (
	"github.com/gin-gonic/gin"
)

// SetupPaymentRoutes configures the deposit checkout and webhook routes.
// Both are public: checkout is keyed by booking reference, and the webhook
// authenticates via the Stripe signature header.
func SetupPaymentRoutes(rg *gin.RouterGroup, controller *Controller) {
	payments := rg.Group("/payments")
	{
		payments.POST("/checkout", controller.CreateCheckout) // POST /api/v1/payments/checkout
		payments.POST("/webhook", controller.HandleWebhook)   // POST /api/v1/payments/webhook
	}
}
