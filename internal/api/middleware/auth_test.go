package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

// stubAuthService accepts exactly one token and resolves it to a fixed user.
type stubAuthService struct {
	token string
	user  *domain.User
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) VerifyToken(_ context.Context, token string) (*domain.User, error) {
	if token == s.token {
		return s.user, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func newStubAuth() *stubAuthService {
	return &stubAuthService{
		token: "good-token",
		user: &domain.User{
			ID:       "user-00000001",
			Email:    "alice@example.com",
			Role:     domain.RoleAdmin,
			IsActive: true,
			TenantID: "tenant-00000001",
		},
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(newStubAuth())
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := c.Get("user").(*domain.User)
		if !ok || user.Email != "alice@example.com" {
			t.Fatalf("user not set on context")
		}
		if c.Get("user_id") != "user-00000001" {
			t.Fatalf("user_id not set")
		}
		if c.Get("tenant_id") != "tenant-00000001" {
			t.Fatalf("tenant_id not set")
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newStubAuth())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newStubAuth())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newStubAuth())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
