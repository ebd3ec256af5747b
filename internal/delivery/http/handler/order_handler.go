package handler

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-order-service/internal/middleware"
	"restaurant-order-service/internal/usecase/order"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *order.Service
}

func NewOrderHandler(service *order.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := router.Group("/orders")
	{
		group.POST("", authMW, h.PlaceOrder)
		group.GET("", h.GetOrders)
		group.PUT("/:id/status", authMW, h.UpdateStatus)
	}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req order.PlaceOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order information")
		return
	}

	// The order is always placed on behalf of the authenticated user,
	// whatever the body claims.
	req.UserID = middleware.CurrentUserID(c)

	placed, err := h.service.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, placed)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, appErrors.ErrOrderNotFound.Error())
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid order information")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), uint(orderID), &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, updated)
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.service.GetOrders(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, orders)
}

func (h *OrderHandler) respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appErrors.ErrOrderNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrInvalidStatusTransition):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, appErrors.ErrOperationFailed.Error())
	}
}
