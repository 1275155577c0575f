package bookings

import (
	"errors"
	"net/http"

	"glambook/internal/shared/constants"
	"glambook/internal/shared/utils/response"
	"glambook/pkg/cache"
	"glambook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	cache   cache.Service
}

func NewController(service Service, cacheService cache.Service) *Controller {
	return &Controller{
		service: service,
		cache:   cacheService,
	}
}

// SubmitQuote handles POST /api/v1/quotes
// Runs the full pipeline: validation, availability, dual-tier quote, persistence.
func (c *Controller) SubmitQuote(ctx *gin.Context) {
	var req SubmitQuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	booking, err := c.service.SubmitQuote(ctx.Request.Context(), &req)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			response.ValidationFailed(ctx, "Submission failed validation", validationErr.Fields)
			return
		}
		var unavailableErr *UnavailableError
		if errors.As(err, &unavailableErr) {
			response.Error(ctx, http.StatusConflict, unavailableErr.Reason)
			return
		}
		logger.Error("Failed to submit quote", "error", err)
		response.Error(ctx, http.StatusInternalServerError, "Failed to create quote")
		return
	}

	response.Success(ctx, http.StatusCreated, "Quote created successfully", booking)
}

// GetQuote handles GET /api/v1/quotes/:id
func (c *Controller) GetQuote(ctx *gin.Context) {
	id := ctx.Param("id")
	rctx := ctx.Request.Context()

	var booking Booking
	var err error
	if c.cache != nil {
		err = c.cache.GetOrSet(rctx, constants.BuildBookingDetailKey(id), constants.TTL_BOOKING_DETAIL,
			func() (interface{}, error) {
				return c.service.GetBooking(rctx, id)
			}, &booking)
	} else {
		var b *Booking
		if b, err = c.service.GetBooking(rctx, id); err == nil {
			booking = *b
		}
	}
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(ctx, http.StatusNotFound, "Booking not found")
			return
		}
		logger.Error("Failed to fetch booking", "booking_id", id, "error", err)
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	response.Success(ctx, http.StatusOK, "Booking retrieved successfully", booking)
}

// ListBookings handles GET /api/v1/admin/bookings
func (c *Controller) ListBookings(ctx *gin.Context) {
	var query BookingListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.ErrorWithDetail(ctx, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	rctx := ctx.Request.Context()

	var list BookingListResponse
	var err error
	if c.cache != nil {
		err = c.cache.GetOrSet(rctx, constants.BuildBookingsListKey(query.Page, query.Limit, query.Status),
			constants.TTL_BOOKINGS_LIST, func() (interface{}, error) {
				return c.service.ListBookings(rctx, query)
			}, &list)
	} else {
		var l *BookingListResponse
		if l, err = c.service.ListBookings(rctx, query); err == nil {
			list = *l
		}
	}
	if err != nil {
		logger.Error("Failed to list bookings", "error", err)
		response.Error(ctx, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	response.Success(ctx, http.StatusOK, "Bookings retrieved successfully", list)
}

// GetBookingDetail handles GET /api/v1/admin/bookings/:id
func (c *Controller) GetBookingDetail(ctx *gin.Context) {
	c.GetQuote(ctx)
}

// UpdateStatus handles PATCH /api/v1/admin/bookings/:id/status
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(ctx, http.StatusBadRequest, "Status must be CONFIRMED or CANCELLED", err.Error())
		return
	}

	booking, err := c.service.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(ctx, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(ctx, http.StatusConflict, "Status transition not allowed")
		default:
			logger.Error("Failed to update booking status", "booking_id", ctx.Param("id"), "error", err)
			response.Error(ctx, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Booking status updated", booking)
}

// DeleteBooking handles DELETE /api/v1/admin/bookings/:id
func (c *Controller) DeleteBooking(ctx *gin.Context) {
	if err := c.service.DeleteBooking(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(ctx, http.StatusNotFound, "Booking not found")
			return
		}
		logger.Error("Failed to delete booking", "booking_id", ctx.Param("id"), "error", err)
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	response.Success(ctx, http.StatusOK, "Booking deleted", nil)
}

// Dashboard handles GET /api/v1/admin/dashboard
func (c *Controller) Dashboard(ctx *gin.Context) {
	rctx := ctx.Request.Context()

	var stats DashboardStats
	var err error
	if c.cache != nil {
		err = c.cache.GetOrSet(rctx, constants.CACHE_KEY_DASHBOARD_STATS, constants.TTL_DASHBOARD_STATS,
			func() (interface{}, error) {
				return c.service.DashboardStats(rctx)
			}, &stats)
	} else {
		var s *DashboardStats
		if s, err = c.service.DashboardStats(rctx); err == nil {
			stats = *s
		}
	}
	if err != nil {
		logger.Error("Failed to compute dashboard stats", "error", err)
		response.Error(ctx, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}

	response.Success(ctx, http.StatusOK, "Dashboard stats retrieved", stats)
}
