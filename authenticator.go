package userauth

import (
	"context"
)

// Auther orchestrates login: verify the credential through an
// IdentityProvider, then issue a session token bound to the identity.
type Auther struct {
	provider IdentityProvider
	tokens   TokenService
	logger   Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, tokens TokenService) *Auther {
	return &Auther{
		provider: provider,
		tokens:   tokens,
		logger:   defLogger{},
	}
}

func (a *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Login verifies the credential and returns a signed session token whose
// subject is the account id. Verification failures pass through unchanged so
// the transport layer can map ErrInvalidCredentials to one flat 401.
func (a *Auther) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := a.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		a.logger.Info("login verification failed", "error", err)
		return "", err
	}

	token, err := a.tokens.Issue(identity.ID())
	if err != nil {
		a.logger.Error("login token issuance failed", "error", err)
		return "", err
	}

	return token, nil
}

// SessionFromToken validates a presented token and returns its claims.
// Validation is stateless and idempotent; the same token yields the same
// claims every time.
func (a *Auther) SessionFromToken(token string) (AuthClaims, error) {
	return a.tokens.Validate(token)
}
