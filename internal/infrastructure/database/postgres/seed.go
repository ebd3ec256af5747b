package postgres

import (
	"fmt"
	"math/rand"
	"time"

	"restaurant-order-service/internal/domain/order"
	"restaurant-order-service/internal/infrastructure/database/postgres/models"
	"restaurant-order-service/internal/logger"
	"restaurant-order-service/pkg/utils"

	"go.uber.org/zap"
)

// Seed inserts sample data for local development. It is a no-op when the
// database already holds users.
func Seed(db *DB) error {
	var userCount int64
	if err := db.DB.Model(&models.UserModel{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if userCount > 0 {
		logger.Info("Seed skipped, data already present")
		return nil
	}

	hashed, err := utils.HashPassword("yourpassword")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := []models.UserModel{
		{Name: "John Doe", Email: "john@example.com", Password: hashed},
		{Name: "Jane Smith", Email: "jane@example.com", Password: hashed},
	}
	if err := db.DB.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	categories := []models.CategoryModel{
		{Name: "Starters"},
		{Name: "Mains"},
		{Name: "Desserts"},
		{Name: "Drinks"},
	}
	if err := db.DB.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	dishes := []models.DishModel{
		{Name: "Bruschetta", Description: "Grilled bread, tomato, basil", Price: 6.50, Rating: 4, CategoryID: categories[0].ID},
		{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 10.99, Rating: 5, CategoryID: categories[1].ID},
		{Name: "Carbonara", Description: "Egg, pecorino, guanciale", Price: 12.50, Rating: 4, CategoryID: categories[1].ID},
		{Name: "Tiramisu", Description: "Coffee-soaked savoiardi, mascarpone", Price: 7.00, Rating: 5, CategoryID: categories[2].ID},
		{Name: "Lemonade", Description: "Fresh-squeezed", Price: 3.50, Rating: 3, CategoryID: categories[3].ID},
	}
	if err := db.DB.Create(&dishes).Error; err != nil {
		return fmt.Errorf("failed to seed dishes: %w", err)
	}

	statuses := []string{order.StatusPending, "Completed"}
	orders := make([]models.OrderModel, 0, 40)
	for i := 0; i < 40; i++ {
		dish := dishes[rand.Intn(len(dishes))]
		quantity := 1 + rand.Intn(4)
		orders = append(orders, models.OrderModel{
			UserID:    users[rand.Intn(len(users))].ID,
			DishID:    dish.ID,
			Quantity:  quantity,
			Price:     dish.Price * float64(quantity),
			Timestamp: time.Now().Add(-time.Duration(rand.Intn(60*24)) * time.Minute),
			Status:    statuses[rand.Intn(len(statuses))],
		})
	}
	if err := db.DB.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	logger.Info("Seed completed",
		zap.Int("users", len(users)),
		zap.Int("categories", len(categories)),
		zap.Int("dishes", len(dishes)),
		zap.Int("orders", len(orders)),
	)

	return nil
}
