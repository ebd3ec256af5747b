package models

import (
	"time"

	domainOrder "restaurant-order-service/internal/domain/order"
)

type OrderModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	UserID    uint `gorm:"index;not null"`
	DishID    uint `gorm:"index;not null"`
	Quantity  int  `gorm:"not null"`
	Price     float64
	Timestamp time.Time
	Status    string

	User UserModel `gorm:"foreignKey:UserID"`
	Dish DishModel `gorm:"foreignKey:DishID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func ToOrderModel(o *domainOrder.Order) *OrderModel {
	return &OrderModel{
		ID:        o.ID,
		UserID:    o.UserID,
		DishID:    o.DishID,
		Quantity:  o.Quantity,
		Price:     o.Price,
		Timestamp: o.Timestamp,
		Status:    o.Status,
	}
}

func ToOrderEntity(m *OrderModel) *domainOrder.Order {
	return &domainOrder.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		DishID:    m.DishID,
		Quantity:  m.Quantity,
		Price:     m.Price,
		Timestamp: m.Timestamp,
		Status:    m.Status,
	}
}
