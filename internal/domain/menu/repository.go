package menu

import "context"

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	GetAll(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID uint) error
}

// DishRepository defines the interface for dish persistence. Order
// placement only needs GetByID for the price lookup.
type DishRepository interface {
	Create(ctx context.Context, dish *Dish) error
	GetByID(ctx context.Context, dishID uint) (*Dish, error)
	GetAll(ctx context.Context) ([]*Dish, error)
	Update(ctx context.Context, dish *Dish) error
	Delete(ctx context.Context, dishID uint) error
}
