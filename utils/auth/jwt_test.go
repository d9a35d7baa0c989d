package auth

import (
	"testing"
	"time"

	"github.com/sahilchouksey/studystack-api/model"
)

func newTestManager(secret string, expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: secret,
		Expiry: expiry,
		Issuer: "studystack-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := newTestManager("test-secret", time.Hour)

	token, err := manager.GenerateToken(42, model.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("expected role teacher, got %s", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a JTI on the issued token")
	}
	if claims.Issuer != "studystack-test" {
		t.Errorf("unexpected issuer %q", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	manager := newTestManager("test-secret", -time.Minute)

	token, err := manager.GenerateToken(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := manager.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := newTestManager("secret-one", time.Hour)
	other := newTestManager("secret-two", time.Hour)

	token, err := manager.GenerateToken(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	manager := newTestManager("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "not.a.token"} {
		if _, err := manager.ValidateToken(token); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}
