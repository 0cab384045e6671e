package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "64b0c3f9e4b0a1a2b3c4d5e6",
		Username: "alice",
		Name:     "Alice",
		Role:     domain.RoleClient,
	}
}

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	tkn, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := m.Validate(tkn)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "64b0c3f9e4b0a1a2b3c4d5e6" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Username != "alice" || claims.Role != domain.RoleClient {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	tkn, err := NewManager("secret-a", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).Validate(tkn); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Nanosecond)
	tkn, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := m.Validate(tkn); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestManager_RejectsUnsignedAlgorithm(t *testing.T) {
	m := NewManager("secret", time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("building unsigned token failed: %v", err)
	}

	if _, err := m.Validate(unsigned); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := NewManager("secret", time.Hour)
	if _, err := m.Validate("not.a.token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
