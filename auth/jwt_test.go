package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewBetaTokenManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("BETA_COOKIE_SECRET", "")
	t.Setenv("BETA_COOKIE_ISSUER", "issuer-for-test")

	manager, err := NewBetaTokenManagerFromEnv()
	if err == nil {
		t.Fatalf("expected error when BETA_COOKIE_SECRET is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewBetaTokenManagerFromEnvUsesDefaultIssuer(t *testing.T) {
	t.Setenv("BETA_COOKIE_SECRET", "test-secret")
	t.Setenv("BETA_COOKIE_ISSUER", "")

	manager, err := NewBetaTokenManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "viralpack" {
		t.Fatalf("expected default issuer viralpack, got %q", manager.issuer)
	}
	if manager.ttl != 30*24*time.Hour {
		t.Fatalf("expected default ttl 720h, got %s", manager.ttl)
	}
}

func TestBetaTokenSignAndParseRoundTrip(t *testing.T) {
	t.Setenv("BETA_COOKIE_SECRET", "test-secret")
	t.Setenv("BETA_COOKIE_ISSUER", "test-issuer")

	manager, err := NewBetaTokenManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := manager.Sign()
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	if err := manager.Parse(token); err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
}

func TestBetaTokenParseRejectsInvalidSignature(t *testing.T) {
	manager := &BetaTokenManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	forgedClaims := jwt.MapClaims{
		"scope": ScopeBeta,
		"iss":   "issuer",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, forgedClaims)
	tokenString, err := forgedToken.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	if err := manager.Parse(tokenString); err == nil {
		t.Fatalf("expected parse to reject forged signature")
	}
}

func TestBetaTokenParseRejectsExpired(t *testing.T) {
	manager := &BetaTokenManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	expiredClaims := jwt.MapClaims{
		"scope": ScopeBeta,
		"iss":   "issuer",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims)
	tokenString, err := expiredToken.SignedString([]byte("service-secret"))
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	if err := manager.Parse(tokenString); err == nil {
		t.Fatalf("expected parse to reject expired token")
	}
}

func TestBetaTokenParseRejectsWrongScope(t *testing.T) {
	manager := &BetaTokenManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	claims := jwt.MapClaims{
		"scope": "admin",
		"iss":   "issuer",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("service-secret"))
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	if err := manager.Parse(tokenString); err == nil {
		t.Fatalf("expected parse to reject non-beta scope")
	}
}
