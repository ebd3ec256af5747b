package order

import (
	"context"
	"time"

	domainMenu "restaurant-order-service/internal/domain/menu"
	domainOrder "restaurant-order-service/internal/domain/order"
	"restaurant-order-service/internal/logger"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the closed status table used in strict mode.
// The permissive default accepts any string, matching the behavior
// clients already rely on.
var allowedTransitions = map[string][]string{
	"Pending":    {"Preparing", "Completed", "Cancelled"},
	"Preparing":  {"Delivering", "Cancelled"},
	"Delivering": {"Completed"},
}

type Service struct {
	orderRepo    domainOrder.Repository
	dishRepo     domainMenu.DishRepository
	strictStatus bool
}

func NewService(orderRepo domainOrder.Repository, dishRepo domainMenu.DishRepository, strictStatus bool) *Service {
	return &Service{
		orderRepo:    orderRepo,
		dishRepo:     dishRepo,
		strictStatus: strictStatus,
	}
}

// PlaceOrder computes the order price from the dish's current price and
// the requested quantity. The result is a snapshot: dish price changes
// after placement never touch existing orders. A missing dish surfaces as
// the generic operation failure, not a 404.
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*domainOrder.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("INVALID_ORDER_DATA", "Invalid order information", err)
	}

	dish, err := s.dishRepo.GetByID(ctx, req.DishID)
	if err != nil {
		logger.Warn("Order placement for unresolvable dish",
			zap.Uint("dish_id", req.DishID),
			zap.String("event", "order_failed_dish_lookup"),
		)
		return nil, appErrors.ErrOperationFailed
	}

	order := &domainOrder.Order{
		UserID:    req.UserID,
		DishID:    req.DishID,
		Quantity:  req.Quantity,
		Price:     dish.Price * float64(req.Quantity),
		Timestamp: time.Now(),
		Status:    domainOrder.StatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	logger.Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", order.UserID),
		zap.Uint("dish_id", order.DishID),
		zap.Int("quantity", order.Quantity),
		zap.Float64("price", order.Price),
		zap.String("event", "order_placed"),
	)

	return order, nil
}

// UpdateStatus overwrites the order status. In the default mode any
// string is accepted; strict mode consults the transition table.
func (s *Service) UpdateStatus(ctx context.Context, orderID uint, req *UpdateStatusRequest) (*domainOrder.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("INVALID_ORDER_DATA", "Invalid order information", err)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, appErrors.ErrOrderNotFound
	}

	if s.strictStatus && !transitionAllowed(order.Status, req.Status) {
		return nil, appErrors.ErrInvalidStatusTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, req.Status); err != nil {
		return nil, appErrors.ErrOperationFailed
	}
	order.Status = req.Status

	logger.Info("Order status updated",
		zap.Uint("order_id", orderID),
		zap.String("status", req.Status),
		zap.String("event", "order_status_updated"),
	)

	return order, nil
}

// GetOrders returns every order, unpaginated.
func (s *Service) GetOrders(ctx context.Context) ([]*domainOrder.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	return orders, nil
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
