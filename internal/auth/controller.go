package auth

import (
	"net/http"

	"glambook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Login successful", resp)
}

func (c *Controller) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetail(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	tokenPair, err := c.service.RefreshToken(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case ErrInvalidToken, ErrTokenExpired:
			response.Error(ctx, http.StatusUnauthorized, "Invalid or expired refresh token")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Token refreshed successfully", tokenPair)
}

func (c *Controller) GetMe(ctx *gin.Context) {
	email, _ := ctx.Get("user_email")
	role, _ := ctx.Get("user_role")

	adminData := map[string]interface{}{
		"email": email,
		"role":  role,
	}

	response.Success(ctx, http.StatusOK, "Admin data retrieved successfully", adminData)
}
