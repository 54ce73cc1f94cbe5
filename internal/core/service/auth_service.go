package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/manus88/machinery-erp/internal/core/domain"
	"github.com/manus88/machinery-erp/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements registration, login and stateless token
// verification. There is no server-side session store: the token itself
// carries the subject identity and expiry.
type AuthService struct {
	users     ports.UserRepository
	tenants   ports.TenantRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tenants ports.TenantRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, tenants: tenants, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a user account. Without a tenant id a new tenant is
// provisioned and the user becomes its admin; with one, the tenant must exist
// and the user joins as a regular member. The tenant+user pair of the
// bootstrap path persists atomically.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("register: %w", err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           newID("user"),
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		IsActive:     true,
		CreatedAt:    now,
	}

	if input.TenantID == "" {
		tenant := &domain.Tenant{
			ID:        newID("tenant"),
			Name:      fmt.Sprintf("%s's Company", input.FullName),
			Plan:      domain.PlanFree,
			IsActive:  true,
			CreatedAt: now,
		}
		user.TenantID = tenant.ID
		user.Role = domain.RoleAdmin
		if err := s.users.CreateWithTenant(ctx, tenant, user); err != nil {
			return "", nil, err
		}
		s.logger.Info().Str("tenant_id", tenant.ID).Str("user_id", user.ID).Msg("tenant provisioned")
	} else {
		tenant, err := s.tenants.FindByID(ctx, input.TenantID)
		if err != nil {
			return "", nil, err
		}
		user.TenantID = tenant.ID
		user.Role = domain.RoleUser
		if err := s.users.Create(ctx, user); err != nil {
			return "", nil, err
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("tenant_id", user.TenantID).Str("role", user.Role).Msg("user registered")
	return token, user, nil
}

// Login authenticates by email and password. A missing account and a wrong
// password are indistinguishable to the caller; an inactive account is also
// rejected with the same outcome class.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, domain.ErrInactiveUser
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// VerifyToken validates a bearer token and resolves it to an active user.
// Signature, expiry, subject claim, user lookup and the active flag are all
// checked; any failure collapses into domain.ErrInvalidCredentials.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Email,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
