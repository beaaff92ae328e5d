package userauth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/veloram/go-userauth/middleware/bearer"
)

// guardValidator adapts a TokenService to the guard's validator interface.
// The guard mirrors the claim accessors in its own types to avoid an upward
// import, so the adapter narrows this package's AuthClaims on the way out.
type guardValidator struct {
	tokens TokenService
}

func (v guardValidator) Validate(tokenString string) (bearer.AuthClaims, error) {
	claims, err := v.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// NewTokenGuard returns a bearer guard that validates tokens with the given
// service. Verified claims land in fiber locals under contextKey and in the
// request context, so handlers below the transport layer can read them with
// ClaimsFromContext. An empty contextKey uses the guard's default.
func NewTokenGuard(tokens TokenService, contextKey string) fiber.Handler {
	return bearer.New(bearer.Config{
		Validator:  guardValidator{tokens: tokens},
		ContextKey: contextKey,
		ContextEnricher: func(ctx context.Context, claims bearer.AuthClaims) context.Context {
			if decoded, ok := claims.(AuthClaims); ok {
				return WithClaims(ctx, decoded)
			}
			return ctx
		},
	})
}
