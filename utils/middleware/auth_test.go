package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *auth.JWTManager) {
	t.Helper()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
		Issuer: "studystack-test",
	})
	m := NewAuthMiddleware(jwtManager)

	app := fiber.New()
	app.Get("/admin-only", m.Protect(model.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/any-role", m.Protect(), func(c *fiber.Ctx) error {
		role, _ := GetUserRole(c)
		return c.JSON(fiber.Map{"role": role})
	})

	return app, jwtManager
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	var parsed struct {
		Message string `json:"message"`
	}
	json.Unmarshal(body, &parsed)

	return resp.StatusCode, parsed.Message
}

func TestProtectMissingHeader(t *testing.T) {
	app, _ := newTestApp(t)

	status, message := doRequest(t, app, "/admin-only", "")
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", status)
	}
	if message != "No token, authorization denied" {
		t.Errorf("unexpected message %q", message)
	}
}

func TestProtectWrongScheme(t *testing.T) {
	app, _ := newTestApp(t)

	// A non-Bearer scheme means no token at all, not an invalid one
	status, message := doRequest(t, app, "/admin-only", "Basic xyz")
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", status)
	}
	if message != "No token, authorization denied" {
		t.Errorf("unexpected message %q", message)
	}
}

func TestProtectInvalidToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, message := doRequest(t, app, "/admin-only", "Bearer garbage")
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", status)
	}
	if message != "Token is not valid" {
		t.Errorf("unexpected message %q", message)
	}
}

func TestProtectExpiredToken(t *testing.T) {
	app, _ := newTestApp(t)

	expired := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: -time.Minute,
		Issuer: "studystack-test",
	})
	token, err := expired.GenerateToken(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	status, message := doRequest(t, app, "/admin-only", "Bearer "+token)
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", status)
	}
	if message != "Token is not valid" {
		t.Errorf("unexpected message %q", message)
	}
}

func TestProtectInsufficientRole(t *testing.T) {
	app, jwtManager := newTestApp(t)

	// A valid teacher token on an admin route is a 403, never a 401
	token, err := jwtManager.GenerateToken(7, model.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	status, message := doRequest(t, app, "/admin-only", "Bearer "+token)
	if status != http.StatusForbidden {
		t.Errorf("expected 403, got %d", status)
	}
	if message != "Forbidden: insufficient role" {
		t.Errorf("unexpected message %q", message)
	}
}

func TestProtectAllowsMatchingRole(t *testing.T) {
	app, jwtManager := newTestApp(t)

	token, err := jwtManager.GenerateToken(7, model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	status, _ := doRequest(t, app, "/admin-only", "Bearer "+token)
	if status != http.StatusOK {
		t.Errorf("expected 200, got %d", status)
	}
}

func TestProtectWithoutRolesAuthenticatesOnly(t *testing.T) {
	app, jwtManager := newTestApp(t)

	token, err := jwtManager.GenerateToken(9, model.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	status, _ := doRequest(t, app, "/any-role", "Bearer "+token)
	if status != http.StatusOK {
		t.Errorf("expected 200, got %d", status)
	}
}
