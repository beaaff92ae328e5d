package userauth

import "context"

type claimsContextKey struct{}

// WithClaims returns a context carrying the verified claims of the request's
// session token.
func WithClaims(ctx context.Context, claims AuthClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext retrieves claims stored by WithClaims. The second return
// is false when the request was not authenticated.
func ClaimsFromContext(ctx context.Context) (AuthClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(AuthClaims)
	return claims, ok
}
