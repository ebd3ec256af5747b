package token

import (
	"errors"
	"testing"
	"time"
)

func newTestIssuer() *Issuer {
	return NewIssuer("test-access-secret", "test-refresh-secret", time.Hour)
}

func TestIssueAndVerifyAccess(t *testing.T) {
	issuer := newTestIssuer()

	tokenString, err := issuer.IssueAccess(42)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	claims, err := issuer.VerifyAccess(tokenString)
	if err != nil {
		t.Fatalf("VerifyAccess returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.ExpiresAt == nil {
		t.Error("access token should carry an expiration")
	}
}

func TestIssueAndVerifyRefresh(t *testing.T) {
	issuer := newTestIssuer()

	tokenString, err := issuer.IssueRefresh(7)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	claims, err := issuer.VerifyRefresh(tokenString)
	if err != nil {
		t.Fatalf("VerifyRefresh returned error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.ExpiresAt != nil {
		t.Error("refresh token must not carry an expiration")
	}
}

func TestRefreshTokensAreUnique(t *testing.T) {
	issuer := newTestIssuer()

	first, err := issuer.IssueRefresh(7)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}
	second, err := issuer.IssueRefresh(7)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	if first == second {
		t.Error("two refresh tokens for the same user must differ")
	}
}

func TestAccessAndRefreshContextsAreSeparate(t *testing.T) {
	issuer := newTestIssuer()

	accessToken, err := issuer.IssueAccess(1)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}
	refreshToken, err := issuer.IssueRefresh(1)
	if err != nil {
		t.Fatalf("IssueRefresh returned error: %v", err)
	}

	if _, err := issuer.VerifyRefresh(accessToken); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("access token verified against refresh secret: %v", err)
	}
	if _, err := issuer.VerifyAccess(refreshToken); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("refresh token verified against access secret: %v", err)
	}
}

func TestVerifyExpiredAccessToken(t *testing.T) {
	issuer := NewIssuer("test-access-secret", "test-refresh-secret", -time.Minute)

	tokenString, err := issuer.IssueAccess(1)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	if _, err := issuer.VerifyAccess(tokenString); !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyMalformedToken(t *testing.T) {
	issuer := newTestIssuer()

	if _, err := issuer.VerifyAccess("not-a-token"); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestVerifyTokenFromForeignIssuer(t *testing.T) {
	issuer := newTestIssuer()
	foreign := NewIssuer("other-access-secret", "other-refresh-secret", time.Hour)

	tokenString, err := foreign.IssueAccess(1)
	if err != nil {
		t.Fatalf("IssueAccess returned error: %v", err)
	}

	if _, err := issuer.VerifyAccess(tokenString); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}
