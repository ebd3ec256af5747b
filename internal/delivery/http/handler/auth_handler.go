package handler

import (
	"errors"
	"net/http"

	"restaurant-order-service/internal/middleware"
	"restaurant-order-service/internal/usecase/auth"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/auth")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
		group.POST("/refresh-token", h.RefreshToken)
		group.GET("/protected", authMW, h.Protected)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)
	req.Name = utils.SanitizeString(req.Name)

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	pair, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, pair)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req auth.RefreshRequest
	// An unreadable body leaves the token empty, which is handled below.
	_ = c.ShouldBindJSON(&req)

	pair, err := h.service.Refresh(c.Request.Context(), utils.SanitizeString(req.RefreshToken))
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, pair)
}

func (h *AuthHandler) Protected(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "You are authenticated!",
		"userId":  middleware.CurrentUserID(c),
	})
}

func (h *AuthHandler) respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appErrors.ErrEmailPasswordRequired),
		errors.Is(err, appErrors.ErrUserNotFound),
		errors.Is(err, appErrors.ErrInvalidPassword):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appErrors.ErrMissingRefreshToken),
		errors.Is(err, appErrors.ErrInvalidRefreshToken):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, appErrors.ErrOperationFailed.Error())
	}
}
