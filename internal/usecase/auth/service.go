package auth

import (
	"context"
	"fmt"

	domainUser "restaurant-order-service/internal/domain/user"
	"restaurant-order-service/internal/logger"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/token"
	"restaurant-order-service/pkg/utils"

	"go.uber.org/zap"
)

// Service owns the session lifecycle: registration, login, and
// refresh-token rotation. Each user has at most one live refresh token;
// rotation on every refresh is what invalidates the previous one.
type Service struct {
	userRepo domainUser.Repository
	issuer   *token.Issuer
}

func NewService(userRepo domainUser.Repository, issuer *token.Issuer) *Service {
	return &Service{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

// Register creates the account but does not log the user in; no tokens
// are issued until the first login.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("event", "user_registered"),
	)

	return ToUserResponse(user), nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenPairResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, appErrors.ErrEmailPasswordRequired
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.Uint("user_id", user.ID),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidPassword
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	logger.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("event", "login_success"),
	)

	return pair, nil
}

// Refresh exchanges a live refresh token for a new token pair. A refresh
// token is live iff it verifies against the refresh secret AND equals the
// value stored on the user row. The swap is conditional on that stored
// value, so two concurrent refreshes of the same token cannot both win.
func (s *Service) Refresh(ctx context.Context, presented string) (*TokenPairResponse, error) {
	if presented == "" {
		return nil, appErrors.ErrMissingRefreshToken
	}

	claims, err := s.issuer.VerifyRefresh(presented)
	if err != nil {
		logger.Warn("Refresh attempt with unverifiable token",
			zap.String("event", "refresh_failed_verify"),
		)
		return nil, appErrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidRefreshToken
	}

	if user.RefreshToken != presented {
		// Rotated-out token being replayed, or a forgery signed with a
		// leaked secret. Either way the session value has moved on.
		logger.Warn("Refresh attempt with stale token",
			zap.Uint("user_id", user.ID),
			zap.String("event", "refresh_failed_stale"),
		)
		return nil, appErrors.ErrInvalidRefreshToken
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, err
	}

	rotated, err := s.userRepo.RotateRefreshToken(ctx, user.ID, presented, pair.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	if !rotated {
		// Lost the race against a concurrent refresh of the same token.
		return nil, appErrors.ErrInvalidRefreshToken
	}

	logger.Info("Refresh token rotated",
		zap.Uint("user_id", user.ID),
		zap.String("event", "refresh_success"),
	)

	return pair, nil
}

func (s *Service) issuePair(userID uint) (*TokenPairResponse, error) {
	accessToken, err := s.issuer.IssueAccess(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := s.issuer.IssueRefresh(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
