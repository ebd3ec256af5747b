package handler

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-order-service/internal/usecase/menu"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	service *menu.Service
}

func NewMenuHandler(service *menu.Service) *MenuHandler {
	return &MenuHandler{service: service}
}

func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	categories := router.Group("/categories")
	{
		categories.POST("", authMW, h.CreateCategory)
		categories.GET("", h.GetAllCategories)
		categories.GET("/:id", h.GetCategory)
		categories.PUT("/:id", authMW, h.UpdateCategory)
		categories.DELETE("/:id", authMW, h.DeleteCategory)
	}

	dishes := router.Group("/dishes")
	{
		dishes.POST("", authMW, h.CreateDish)
		dishes.GET("", h.GetAllDishes)
		dishes.GET("/:id", h.GetDish)
		dishes.PUT("/:id", authMW, h.UpdateDish)
		dishes.DELETE("/:id", authMW, h.DeleteDish)
	}
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req menu.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, category)
}

func (h *MenuHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, appErrors.ErrCategoryNotFound.Error())
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, category)
}

func (h *MenuHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.service.GetAllCategories(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, categories)
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, appErrors.ErrCategoryNotFound.Error())
		return
	}

	var req menu.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, category)
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, appErrors.ErrCategoryNotFound.Error())
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (h *MenuHandler) CreateDish(c *gin.Context) {
	var req menu.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	req.Description = utils.SanitizeString(req.Description)

	dish, err := h.service.CreateDish(c.Request.Context(), &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dish)
}

func (h *MenuHandler) GetDish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, appErrors.ErrDishNotFound.Error())
		return
	}

	dish, err := h.service.GetDish(c.Request.Context(), id)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dish)
}

func (h *MenuHandler) GetAllDishes(c *gin.Context) {
	dishes, err := h.service.GetAllDishes(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dishes)
}

func (h *MenuHandler) UpdateDish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, appErrors.ErrDishNotFound.Error())
		return
	}

	var req menu.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	dish, err := h.service.UpdateDish(c.Request.Context(), id, &req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dish)
}

func (h *MenuHandler) DeleteDish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, appErrors.ErrDishNotFound.Error())
		return
	}

	if err := h.service.DeleteDish(c.Request.Context(), id); err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}

func (h *MenuHandler) respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appErrors.ErrCategoryNotFound),
		errors.Is(err, appErrors.ErrDishNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, appErrors.ErrOperationFailed.Error())
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
