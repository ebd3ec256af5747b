package menu

import (
	"context"

	domainMenu "restaurant-order-service/internal/domain/menu"
	"restaurant-order-service/internal/logger"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/utils"

	"go.uber.org/zap"
)

// Service covers category and dish management. Plain CRUD; the only
// invariants are the dish field bounds (price >= 0, rating 1-5).
type Service struct {
	categoryRepo domainMenu.CategoryRepository
	dishRepo     domainMenu.DishRepository
}

func NewService(categoryRepo domainMenu.CategoryRepository, dishRepo domainMenu.DishRepository) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		dishRepo:     dishRepo,
	}
}

func (s *Service) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*domainMenu.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid category information", err)
	}

	category := &domainMenu.Category{
		Name:  req.Name,
		Image: req.Image,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	logger.Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name),
	)

	return category, nil
}

func (s *Service) GetCategory(ctx context.Context, categoryID uint) (*domainMenu.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, appErrors.ErrCategoryNotFound
	}

	return category, nil
}

func (s *Service) GetAllCategories(ctx context.Context) ([]*domainMenu.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	return categories, nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID uint, req *UpdateCategoryRequest) (*domainMenu.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid category information", err)
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, appErrors.ErrCategoryNotFound
	}

	category.Name = req.Name

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return appErrors.ErrCategoryNotFound
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		return appErrors.ErrOperationFailed
	}

	return nil
}

func (s *Service) CreateDish(ctx context.Context, req *CreateDishRequest) (*domainMenu.Dish, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid dish information", err)
	}

	dish := &domainMenu.Dish{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Rating:      req.Rating,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	}

	if err := s.dishRepo.Create(ctx, dish); err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	logger.Info("Dish created",
		zap.Uint("dish_id", dish.ID),
		zap.String("name", dish.Name),
		zap.Float64("price", dish.Price),
	)

	return dish, nil
}

func (s *Service) GetDish(ctx context.Context, dishID uint) (*domainMenu.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, appErrors.ErrDishNotFound
	}

	return dish, nil
}

func (s *Service) GetAllDishes(ctx context.Context) ([]*domainMenu.Dish, error) {
	dishes, err := s.dishRepo.GetAll(ctx)
	if err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	return dishes, nil
}

func (s *Service) UpdateDish(ctx context.Context, dishID uint, req *UpdateDishRequest) (*domainMenu.Dish, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid dish information", err)
	}

	dish, err := s.dishRepo.GetByID(ctx, dishID)
	if err != nil {
		return nil, appErrors.ErrDishNotFound
	}

	dish.Name = req.Name
	dish.Description = req.Description
	dish.Price = req.Price
	dish.Rating = req.Rating
	dish.CategoryID = req.CategoryID

	if err := s.dishRepo.Update(ctx, dish); err != nil {
		return nil, appErrors.ErrOperationFailed
	}

	return dish, nil
}

func (s *Service) DeleteDish(ctx context.Context, dishID uint) error {
	if _, err := s.dishRepo.GetByID(ctx, dishID); err != nil {
		return appErrors.ErrDishNotFound
	}

	if err := s.dishRepo.Delete(ctx, dishID); err != nil {
		return appErrors.ErrOperationFailed
	}

	return nil
}
