package postgres

import (
	"context"
	"errors"
	"fmt"

	domainOrder "restaurant-order-service/internal/domain/order"
	"restaurant-order-service/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// OrderRepository implements domain order.Repository.
type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) domainOrder.Repository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domainOrder.Order) error {
	dbModel := models.ToOrderModel(o)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	o.ID = dbModel.ID

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID uint) (*domainOrder.Order, error) {
	var dbModel models.OrderModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", orderID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainOrder.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return models.ToOrderEntity(&dbModel), nil
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]*domainOrder.Order, error) {
	var dbModels []models.OrderModel
	if err := r.db.DB.WithContext(ctx).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domainOrder.Order, 0, len(dbModels))
	for i := range dbModels {
		orders = append(orders, models.ToOrderEntity(&dbModels[i]))
	}

	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status)

	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainOrder.ErrOrderNotFound
	}

	return nil
}
