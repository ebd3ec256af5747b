package auth

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	domainUser "restaurant-order-service/internal/domain/user"
	"restaurant-order-service/internal/logger"
	appErrors "restaurant-order-service/pkg/errors"
	"restaurant-order-service/pkg/token"
	"restaurant-order-service/pkg/utils"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	users  map[uint]*domainUser.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*domainUser.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domainUser.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uint) (*domainUser.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepo) SetRefreshToken(_ context.Context, userID uint, token string) error {
	u, ok := r.users[userID]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.RefreshToken = token
	return nil
}

func (r *fakeUserRepo) RotateRefreshToken(_ context.Context, userID uint, current, next string) (bool, error) {
	u, ok := r.users[userID]
	if !ok || u.RefreshToken != current {
		return false, nil
	}
	u.RefreshToken = next
	return true, nil
}

func newTestService(repo *fakeUserRepo) *Service {
	issuer := token.NewIssuer("test-access-secret", "test-refresh-secret", time.Hour)
	return NewService(repo, issuer)
}

func registerAndLogin(t *testing.T, svc *Service) *TokenPairResponse {
	t.Helper()

	ctx := context.Background()
	_, err := svc.Register(ctx, &RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "yourpassword",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	pair, err := svc.Login(ctx, &LoginRequest{
		Email:    "john@example.com",
		Password: "yourpassword",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	return pair
}

func TestRegisterMasksPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "yourpassword",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.Password != utils.PasswordMask {
		t.Errorf("expected masked password %q, got %q", utils.PasswordMask, resp.Password)
	}

	stored := repo.users[resp.ID]
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.Password == "yourpassword" {
		t.Error("password must be stored hashed, not in plaintext")
	}
	if !utils.CheckPassword(stored.Password, "yourpassword") {
		t.Error("stored hash should verify against the original password")
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "John Doe",
		Email:    "not-an-email",
		Password: "yourpassword",
	})

	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected code VALIDATION_ERROR, got %q", appErr.Code)
	}
}

func TestLoginIssuesTokensForUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	pair := registerAndLogin(t, svc)

	claims, err := svc.issuer.VerifyAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("access token failed verification: %v", err)
	}
	if claims.UserID != 1 {
		t.Errorf("expected user id 1 in access token, got %d", claims.UserID)
	}

	if repo.users[1].RefreshToken != pair.RefreshToken {
		t.Error("issued refresh token was not stored on the user")
	}
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "john@example.com"})
	if !errors.Is(err, appErrors.ErrEmailPasswordRequired) {
		t.Errorf("expected ErrEmailPasswordRequired, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "yourpassword",
	})
	if !errors.Is(err, appErrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registerAndLogin(t, svc)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "john@example.com",
		Password: "notmypassword",
	})
	if !errors.Is(err, appErrors.ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	pair := registerAndLogin(t, svc)

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	if next.RefreshToken == pair.RefreshToken {
		t.Error("refresh must issue a new refresh token")
	}
	if repo.users[1].RefreshToken != next.RefreshToken {
		t.Error("rotated refresh token was not stored on the user")
	}

	claims, err := svc.issuer.VerifyAccess(next.AccessToken)
	if err != nil {
		t.Fatalf("new access token failed verification: %v", err)
	}
	if claims.UserID != 1 {
		t.Errorf("expected user id 1 in new access token, got %d", claims.UserID)
	}
}

func TestRefreshReplayOfRotatedTokenFails(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	pair := registerAndLogin(t, svc)

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("first Refresh returned error: %v", err)
	}

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	if !errors.Is(err, appErrors.ErrInvalidRefreshToken) {
		t.Errorf("replayed token should be rejected, got %v", err)
	}

	// The losing replay must not disturb the live session.
	if repo.users[1].RefreshToken != next.RefreshToken {
		t.Error("failed replay must not change the stored refresh token")
	}
}

func TestRefreshMissingToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Refresh(context.Background(), "")
	if !errors.Is(err, appErrors.ErrMissingRefreshToken) {
		t.Errorf("expected ErrMissingRefreshToken, got %v", err)
	}
}

func TestRefreshForgedToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registerAndLogin(t, svc)

	forger := token.NewIssuer("other-access-secret", "other-refresh-secret", time.Hour)
	forged, err := forger.IssueRefresh(1)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	_, err = svc.Refresh(context.Background(), forged)
	if !errors.Is(err, appErrors.ErrInvalidRefreshToken) {
		t.Errorf("forged token should be rejected, got %v", err)
	}
}

func TestRefreshTokenNotStored(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	registerAndLogin(t, svc)

	// Verifies fine but was never the stored value for this user.
	stray, err := svc.issuer.IssueRefresh(1)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	_, err = svc.Refresh(context.Background(), stray)
	if !errors.Is(err, appErrors.ErrInvalidRefreshToken) {
		t.Errorf("unstored token should be rejected, got %v", err)
	}
}
