package postgres

import (
	"context"
	"errors"
	"fmt"

	domainMenu "restaurant-order-service/internal/domain/menu"
	"restaurant-order-service/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// CategoryRepository implements domain menu.CategoryRepository.
type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) domainMenu.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domainMenu.Category) error {
	dbModel := models.ToCategoryModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.ID = dbModel.ID

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID uint) (*domainMenu.Category, error) {
	var dbModel models.CategoryModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", categoryID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainMenu.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return models.ToCategoryEntity(&dbModel), nil
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*domainMenu.Category, error) {
	var dbModels []models.CategoryModel
	if err := r.db.DB.WithContext(ctx).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domainMenu.Category, 0, len(dbModels))
	for i := range dbModels {
		categories = append(categories, models.ToCategoryEntity(&dbModels[i]))
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domainMenu.Category) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":  c.Name,
			"image": c.Image,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainMenu.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", categoryID).
		Delete(&models.CategoryModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainMenu.ErrCategoryNotFound
	}

	return nil
}

// DishRepository implements domain menu.DishRepository.
type DishRepository struct {
	db *DB
}

func NewDishRepository(db *DB) domainMenu.DishRepository {
	return &DishRepository{db: db}
}

func (r *DishRepository) Create(ctx context.Context, d *domainMenu.Dish) error {
	dbModel := models.ToDishModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create dish: %w", err)
	}

	d.ID = dbModel.ID

	return nil
}

func (r *DishRepository) GetByID(ctx context.Context, dishID uint) (*domainMenu.Dish, error) {
	var dbModel models.DishModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", dishID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainMenu.ErrDishNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dish: %w", err)
	}

	return models.ToDishEntity(&dbModel), nil
}

func (r *DishRepository) GetAll(ctx context.Context) ([]*domainMenu.Dish, error) {
	var dbModels []models.DishModel
	if err := r.db.DB.WithContext(ctx).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}

	dishes := make([]*domainMenu.Dish, 0, len(dbModels))
	for i := range dbModels {
		dishes = append(dishes, models.ToDishEntity(&dbModels[i]))
	}

	return dishes, nil
}

func (r *DishRepository) Update(ctx context.Context, d *domainMenu.Dish) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DishModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"name":        d.Name,
			"description": d.Description,
			"price":       d.Price,
			"rating":      d.Rating,
			"category_id": d.CategoryID,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update dish: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainMenu.ErrDishNotFound
	}

	return nil
}

func (r *DishRepository) Delete(ctx context.Context, dishID uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", dishID).
		Delete(&models.DishModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete dish: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainMenu.ErrDishNotFound
	}

	return nil
}
