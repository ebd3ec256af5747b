package postgres

import (
	"context"
	"errors"
	"fmt"

	domainUser "restaurant-order-service/internal/domain/user"
	"restaurant-order-service/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// UserRepository implements domain user.Repository.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) domainUser.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domainUser.User) error {
	dbModel := models.ToUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return models.ToUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", userID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return models.ToUserEntity(&dbModel), nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, userID uint, token string) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token", token)

	if result.Error != nil {
		return fmt.Errorf("failed to set refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}

	return nil
}

// RotateRefreshToken is a compare-and-swap on the stored token. The WHERE
// clause carries the current value so two concurrent rotations of the
// same token resolve to exactly one winner at the database.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, userID uint, current, next string) (bool, error) {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ? AND refresh_token = ?", userID, current).
		Update("refresh_token", next)

	if result.Error != nil {
		return false, fmt.Errorf("failed to rotate refresh token: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
