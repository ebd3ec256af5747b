package user

import "context"

// Repository defines the interface for user persistence.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uint) (*User, error)

	// SetRefreshToken unconditionally stores the token on login.
	SetRefreshToken(ctx context.Context, userID uint, token string) error

	// RotateRefreshToken replaces the stored token only if it still equals
	// current. A false return means the compare failed: the presented token
	// was already rotated out by a concurrent refresh, or never stored.
	RotateRefreshToken(ctx context.Context, userID uint, current, next string) (bool, error)
}
