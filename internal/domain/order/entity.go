package order

import "time"

// StatusPending is the initial status of every order.
const StatusPending = "Pending"

// Order records a placed order. Price is dish.Price multiplied by
// Quantity at creation time; later dish price changes never touch it.
type Order struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	DishID    uint      `json:"dishId"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}
