package payments

import (
	"errors"
	"io"
	"net/http"

	"glambook/internal/bookings"
	"glambook/internal/shared/utils/response"
	"glambook/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = 65536

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateCheckout handles POST /api/v1/payments/checkout
func (c *Controller) CreateCheckout(ctx *gin.Context) {
	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	session, err := c.service.CreateCheckoutSession(ctx.Request.Context(), req.BookingID, req.Tier)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			response.Error(ctx, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrTierRequired):
			response.Error(ctx, http.StatusBadRequest, "Select a lead or team tier before checkout")
		case errors.Is(err, ErrBookingNotPayable):
			response.Error(ctx, http.StatusConflict, "This booking cannot accept a deposit")
		default:
			logger.Error("Failed to create checkout session", "booking_id", req.BookingID, "error", err)
			response.Error(ctx, http.StatusInternalServerError, "Failed to create checkout session")
		}
		return
	}

	response.Success(ctx, http.StatusCreated, "Checkout session created", session)
}

// HandleWebhook handles POST /api/v1/payments/webhook
// Stripe signs the raw body, so it is read before any JSON binding.
func (c *Controller) HandleWebhook(ctx *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Failed to read webhook body")
		return
	}

	signature := ctx.GetHeader("Stripe-Signature")
	if err := c.service.HandleWebhookEvent(ctx.Request.Context(), payload, signature); err != nil {
		logger.Error("Webhook processing failed", "error", err)
		response.Error(ctx, http.StatusBadRequest, "Webhook processing failed")
		return
	}

	response.Success(ctx, http.StatusOK, "Webhook processed", nil)
}
