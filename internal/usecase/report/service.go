package report

import (
	"context"
	"time"

	"restaurant-order-service/internal/logger"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/utils"

	"go.uber.org/zap"
)

// Repository is the raw-SQL reporting backend.
type Repository interface {
	TotalSales(ctx context.Context, start, end time.Time) (float64, error)
	TopSellingDishes(ctx context.Context, sortBy string, limit int) ([]*TopSellingItem, error)
	AverageOrderValue(ctx context.Context, start, end time.Time) (float64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) TotalSales(ctx context.Context, start, end time.Time) (*TotalSalesResponse, error) {
	total, err := s.repo.TotalSales(ctx, start, end)
	if err != nil {
		logger.Error("Total sales query failed", zap.Error(err))
		return nil, appErrors.ErrOperationFailed
	}

	return &TotalSalesResponse{TotalSales: total}, nil
}

func (s *Service) TopSellingDishes(ctx context.Context, req *TopSellingRequest) ([]*TopSellingItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid report request", err)
	}

	items, err := s.repo.TopSellingDishes(ctx, req.SortBy, req.Limit)
	if err != nil {
		logger.Error("Top selling dishes query failed", zap.Error(err))
		return nil, appErrors.ErrOperationFailed
	}

	return items, nil
}

func (s *Service) AverageOrderValue(ctx context.Context, start, end time.Time) (*AverageOrderValueResponse, error) {
	avg, err := s.repo.AverageOrderValue(ctx, start, end)
	if err != nil {
		logger.Error("Average order value query failed", zap.Error(err))
		return nil, appErrors.ErrOperationFailed
	}

	return &AverageOrderValueResponse{AverageOrderValue: avg}, nil
}
