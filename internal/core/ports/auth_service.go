package ports

import (
	"context"
	"time"

	"github.com/crmdesk/crm-system/internal/core/domain"
)

// RegisterInput carries the sign-up form fields accepted by Register.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Session is an authenticated browser session issued at login or
// registration. Token is delivered to the client in an HTTP-only cookie.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	// Register creates a new identity and logs it in immediately.
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	// Logout invalidates the session token before its natural expiry.
	Logout(ctx context.Context, token string) error
}

// SessionRevoker tracks sessions invalidated before their token expires.
type SessionRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
