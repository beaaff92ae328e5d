package userauth

import (
	"context"
	"fmt"
	"time"
)

// Logger is the minimal logging surface this package needs. Implementations
// must never receive plaintext passwords, password hashes, signing secrets,
// or raw tokens as arguments.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes of an authenticated identity
type Identity interface {
	ID() string
	Username() string
	Email() string
}

// PasswordHasher hashes and verifies plaintext credentials
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// AuthClaims is the claim set decoded from a verified session token
type AuthClaims interface {
	Subject() string
	UserID() string
	IssuedTime() time.Time
}

// TokenService issues and validates signed session tokens
type TokenService interface {
	Issue(subject string) (string, error)
	Validate(tokenString string) (AuthClaims, error)
}

// IdentityProvider ensures we have a store to retrieve auth identities
type IdentityProvider interface {
	VerifyIdentity(ctx context.Context, email, password string) (Identity, error)
	FindIdentityByID(ctx context.Context, id string) (Identity, error)
}

// AccountRegisterer is the interface we need to handle new user registrations
type AccountRegisterer interface {
	RegisterUser(ctx context.Context, username, email, password string) (*User, error)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	SessionFromToken(token string) (AuthClaims, error)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] USERAUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] USERAUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] USERAUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
