// Package bearer guards fiber routes behind a verified bearer token. A
// request with no Authorization header is rejected with 401; a header that is
// present but malformed, or carries a token that fails verification, is
// rejected with 403. The raw token is never echoed back.
package bearer

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// DefaultContextKey is where verified claims are stored in request locals.
const DefaultContextKey = "auth_user"

var (
	// ErrMissingToken means the Authorization header was absent entirely.
	ErrMissingToken = errors.New("missing authorization header")
	// ErrMalformedHeader means the header was present but not shaped
	// "Bearer <nonempty-token>".
	ErrMalformedHeader = errors.New("malformed authorization header")
)

// TokenValidator mirrors the root package's TokenService.Validate so this
// package stays free of an upward import.
type TokenValidator interface {
	Validate(tokenString string) (AuthClaims, error)
}

// AuthClaims mirrors the root package's claim accessors.
type AuthClaims interface {
	Subject() string
	UserID() string
}

type Config struct {
	// Validator is required for token validation
	Validator TokenValidator
	// ContextKey is the locals key the verified claims are stored under
	ContextKey string
	// AuthScheme defaults to "Bearer"
	AuthScheme string
	// ErrorHandler maps extraction/validation failures to a response
	ErrorHandler fiber.ErrorHandler
	// ContextEnricher propagates claims into the request's context.Context
	// for handlers that operate below the transport layer
	ContextEnricher func(ctx context.Context, claims AuthClaims) context.Context
}

// New returns the guard middleware. Exactly one of the success or reject
// paths runs for every request.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	return func(c *fiber.Ctx) error {
		raw, err := TokenFromHeader(c.Get(fiber.HeaderAuthorization), cfg.AuthScheme)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		claims, err := cfg.Validator.Validate(raw)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, claims)

		if cfg.ContextEnricher != nil {
			c.SetUserContext(cfg.ContextEnricher(c.UserContext(), claims))
		}

		return c.Next()
	}
}

// TokenFromHeader is a strict parser for "Bearer <token>" values: the token
// is the substring after the first space, the scheme comparison is
// case-insensitive, and an empty remainder is malformed, not missing.
func TokenFromHeader(header, authScheme string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, authScheme) {
		return "", ErrMalformedHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMalformedHeader
	}
	return token, nil
}

func configDefault(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Validator == nil {
		panic("bearer middleware configuration: Validator is required")
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = DefaultContextKey
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultErrorHandler
	}

	return cfg
}

// defaultErrorHandler distinguishes an absent credential from a rejected one
// and deliberately sends no body, so nothing about the token leaks back.
func defaultErrorHandler(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrMissingToken) {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.SendStatus(fiber.StatusForbidden)
}
