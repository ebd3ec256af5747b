package models

import domainMenu "restaurant-order-service/internal/domain/menu"

type CategoryModel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Image string
}

func (CategoryModel) TableName() string {
	return "dish_categories"
}

type DishModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	Rating      float64
	Image       string
	CategoryID  uint          `gorm:"index"`
	Category    CategoryModel `gorm:"foreignKey:CategoryID"`
}

func (DishModel) TableName() string {
	return "dish_items"
}

func ToCategoryModel(c *domainMenu.Category) *CategoryModel {
	return &CategoryModel{
		ID:    c.ID,
		Name:  c.Name,
		Image: c.Image,
	}
}

func ToCategoryEntity(m *CategoryModel) *domainMenu.Category {
	return &domainMenu.Category{
		ID:    m.ID,
		Name:  m.Name,
		Image: m.Image,
	}
}

func ToDishModel(d *domainMenu.Dish) *DishModel {
	return &DishModel{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Rating:      d.Rating,
		Image:       d.Image,
		CategoryID:  d.CategoryID,
	}
}

func ToDishEntity(m *DishModel) *domainMenu.Dish {
	return &domainMenu.Dish{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Rating:      m.Rating,
		Image:       m.Image,
		CategoryID:  m.CategoryID,
	}
}
