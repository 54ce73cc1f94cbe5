package ports

import (
	"context"

	"github.com/manus88/machinery-erp/internal/core/domain"
)

// RegisterInput carries all data needed to create an account. TenantID is
// optional: when empty a new tenant is provisioned and the user becomes its
// admin; when set it must resolve to an existing tenant and the user joins
// with the regular role.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
	TenantID string
}

// AuthService defines registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// VerifyToken validates a bearer token and resolves it to an active user.
	// Every failure mode (bad signature, expired, malformed, unknown subject,
	// inactive user) surfaces as domain.ErrInvalidCredentials so callers
	// cannot tell which check failed.
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}
