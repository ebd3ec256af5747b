package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-order-service/internal/usecase/report"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

type ReportHandler struct {
	service *report.Service
}

func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/reports")
	{
		group.GET("/total-sales", h.TotalSales)
		group.GET("/top-selling-menu-items", h.TopSellingMenuItems)
		group.GET("/average-order-value", h.AverageOrderValue)
	}
}

func (h *ReportHandler) TotalSales(c *gin.Context) {
	start, end, err := dateRange(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report request: "+err.Error())
		return
	}

	result, err := h.service.TotalSales(c.Request.Context(), start, end)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *ReportHandler) TopSellingMenuItems(c *gin.Context) {
	req := &report.TopSellingRequest{
		SortBy: c.DefaultQuery("sortBy", "totalOrders"),
		Limit:  10,
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report request: limit must be a number")
			return
		}
		req.Limit = limit
	}

	items, err := h.service.TopSellingDishes(c.Request.Context(), req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, items)
}

func (h *ReportHandler) AverageOrderValue(c *gin.Context) {
	start, end, err := dateRange(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid report request: "+err.Error())
		return
	}

	result, err := h.service.AverageOrderValue(c.Request.Context(), start, end)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

func (h *ReportHandler) respondWithError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Error())
		return
	}
	utils.ErrorResponse(c, http.StatusInternalServerError, appErrors.ErrOperationFailed.Error())
}

// dateRange parses startDate/endDate query params (yyyy-mm-dd). The end
// date is inclusive: it covers through the end of that day.
func dateRange(c *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(reportDateLayout, c.DefaultQuery("startDate", "1970-01-01"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("startDate must be yyyy-mm-dd")
	}

	endRaw := c.Query("endDate")
	if endRaw == "" {
		return start, time.Now(), nil
	}

	end, err := time.Parse(reportDateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("endDate must be yyyy-mm-dd")
	}

	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}
