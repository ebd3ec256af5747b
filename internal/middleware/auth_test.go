package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-order-service/pkg/token"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(issuer *token.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": CurrentUserID(c)})
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	issuer := token.NewIssuer("test-access-secret", "test-refresh-secret", time.Hour)
	router := newAuthRouter(issuer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for missing header, got %d", w.Code)
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	issuer := token.NewIssuer("test-access-secret", "test-refresh-secret", time.Hour)
	router := newAuthRouter(issuer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for malformed header, got %d", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	issuer := token.NewIssuer("test-access-secret", "test-refresh-secret", time.Hour)
	router := newAuthRouter(issuer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for unverifiable token, got %d", w.Code)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expiredIssuer := token.NewIssuer("test-access-secret", "test-refresh-secret", -time.Minute)
	router := newAuthRouter(expiredIssuer)

	expired, err := expiredIssuer.IssueAccess(1)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for expired token, got %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	issuer := token.NewIssuer("test-access-secret", "test-refresh-secret", time.Hour)
	router := newAuthRouter(issuer)

	access, err := issuer.IssueAccess(5)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != `{"userId":5}` {
		t.Errorf("unexpected body: %s", got)
	}
}
