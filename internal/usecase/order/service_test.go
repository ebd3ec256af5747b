package order

import (
	"context"
	"errors"
	"os"
	"testing"

	domainMenu "restaurant-order-service/internal/domain/menu"
	domainOrder "restaurant-order-service/internal/domain/order"
	"restaurant-order-service/internal/logger"
	appErrors "restaurant-order-service/pkg/errors"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type fakeDishRepo struct {
	dishes map[uint]*domainMenu.Dish
}

func (r *fakeDishRepo) Create(_ context.Context, dish *domainMenu.Dish) error { return nil }

func (r *fakeDishRepo) GetByID(_ context.Context, dishID uint) (*domainMenu.Dish, error) {
	d, ok := r.dishes[dishID]
	if !ok {
		return nil, domainMenu.ErrDishNotFound
	}
	found := *d
	return &found, nil
}

func (r *fakeDishRepo) GetAll(_ context.Context) ([]*domainMenu.Dish, error) { return nil, nil }
func (r *fakeDishRepo) Update(_ context.Context, _ *domainMenu.Dish) error   { return nil }
func (r *fakeDishRepo) Delete(_ context.Context, _ uint) error               { return nil }

type fakeOrderRepo struct {
	orders map[uint]*domainOrder.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*domainOrder.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domainOrder.Order) error {
	r.nextID++
	order.ID = r.nextID
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, orderID uint) (*domainOrder.Order, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domainOrder.ErrOrderNotFound
	}
	found := *o
	return &found, nil
}

func (r *fakeOrderRepo) GetAll(_ context.Context) ([]*domainOrder.Order, error) {
	all := make([]*domainOrder.Order, 0, len(r.orders))
	for _, o := range r.orders {
		found := *o
		all = append(all, &found)
	}
	return all, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, orderID uint, status string) error {
	o, ok := r.orders[orderID]
	if !ok {
		return domainOrder.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func newTestService(strict bool) (*Service, *fakeOrderRepo) {
	dishes := &fakeDishRepo{dishes: map[uint]*domainMenu.Dish{
		1: {ID: 1, Name: "Margherita Pizza", Price: 10.99, CategoryID: 1},
	}}
	orders := newFakeOrderRepo()
	return NewService(orders, dishes, strict), orders
}

func TestPlaceOrderSnapshotsPrice(t *testing.T) {
	svc, repo := newTestService(false)

	order, err := svc.PlaceOrder(context.Background(), &PlaceOrderRequest{
		UserID:   3,
		DishID:   1,
		Quantity: 2,
	})
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	if order.Price != 21.98 {
		t.Errorf("expected snapshot price 21.98, got %v", order.Price)
	}
	if order.Status != domainOrder.StatusPending {
		t.Errorf("expected status %q, got %q", domainOrder.StatusPending, order.Status)
	}
	if order.Timestamp.IsZero() {
		t.Error("order timestamp was not set")
	}

	stored := repo.orders[order.ID]
	if stored == nil {
		t.Fatal("order was not persisted")
	}
	if stored.Price != 21.98 {
		t.Errorf("persisted price %v, want 21.98", stored.Price)
	}
}

func TestPlaceOrderUnknownDish(t *testing.T) {
	svc, repo := newTestService(false)

	_, err := svc.PlaceOrder(context.Background(), &PlaceOrderRequest{
		UserID:   3,
		DishID:   99,
		Quantity: 1,
	})
	if !errors.Is(err, appErrors.ErrOperationFailed) {
		t.Errorf("expected ErrOperationFailed, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Error("no order may be created for an unknown dish")
	}
}

func TestPlaceOrderRejectsInvalidQuantity(t *testing.T) {
	svc, repo := newTestService(false)

	_, err := svc.PlaceOrder(context.Background(), &PlaceOrderRequest{
		UserID:   3,
		DishID:   1,
		Quantity: 0,
	})

	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != "INVALID_ORDER_DATA" {
		t.Errorf("expected code INVALID_ORDER_DATA, got %q", appErr.Code)
	}
	if len(repo.orders) != 0 {
		t.Error("no order may be created for invalid input")
	}
}

func TestUpdateStatusPermissiveAcceptsAnyString(t *testing.T) {
	svc, repo := newTestService(false)
	placed, err := svc.PlaceOrder(context.Background(), &PlaceOrderRequest{
		UserID:   3,
		DishID:   1,
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), placed.ID, &UpdateStatusRequest{Status: "OnTheMoon"})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != "OnTheMoon" {
		t.Errorf("expected status OnTheMoon, got %q", updated.Status)
	}
	if repo.orders[placed.ID].Status != "OnTheMoon" {
		t.Error("status change was not persisted")
	}
}

func TestUpdateStatusStrictMode(t *testing.T) {
	svc, repo := newTestService(true)
	placed, err := svc.PlaceOrder(context.Background(), &PlaceOrderRequest{
		UserID:   3,
		DishID:   1,
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), placed.ID, &UpdateStatusRequest{Status: "Delivering"})
	if !errors.Is(err, appErrors.ErrInvalidStatusTransition) {
		t.Errorf("Pending -> Delivering should be rejected, got %v", err)
	}
	if repo.orders[placed.ID].Status != domainOrder.StatusPending {
		t.Error("rejected transition must not change the stored status")
	}

	updated, err := svc.UpdateStatus(context.Background(), placed.ID, &UpdateStatusRequest{Status: "Preparing"})
	if err != nil {
		t.Fatalf("Pending -> Preparing should be allowed, got %v", err)
	}
	if updated.Status != "Preparing" {
		t.Errorf("expected status Preparing, got %q", updated.Status)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc, repo := newTestService(false)

	_, err := svc.UpdateStatus(context.Background(), 42, &UpdateStatusRequest{Status: "Completed"})
	if !errors.Is(err, appErrors.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Error("updating a missing order must not create one")
	}
}

func TestGetOrdersReturnsAll(t *testing.T) {
	svc, _ := newTestService(false)
	for i := 0; i < 3; i++ {
		if _, err := svc.PlaceOrder(context.Background(), &PlaceOrderRequest{
			UserID:   3,
			DishID:   1,
			Quantity: 1,
		}); err != nil {
			t.Fatalf("PlaceOrder returned error: %v", err)
		}
	}

	orders, err := svc.GetOrders(context.Background())
	if err != nil {
		t.Fatalf("GetOrders returned error: %v", err)
	}
	if len(orders) != 3 {
		t.Errorf("expected 3 orders, got %d", len(orders))
	}
}
