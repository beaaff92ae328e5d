// Package userauth implements the credential and session-token lifecycle for
// an HTTP service: account signup with bcrypt-hashed credentials, login that
// verifies a credential and issues a signed bearer token, and a guard that
// validates tokens on protected routes.
//
// The package is transport-thin: HTTP handlers live in http_controller.go and
// the bearer guard in middleware/bearer, both on top of fiber. Everything
// security relevant (hashing cost, signing secret handling, algorithm
// allow-listing, flattened failure responses) lives in the root package.
//
// Wiring order mirrors the dependency graph:
//
//	store := userauth.NewUsersRepository(db)
//	hasher := userauth.NewBcryptHasher(cfg.BcryptCost, cfg.HashWorkers)
//	provider := userauth.NewUserProvider(store, hasher)
//	tokens := userauth.NewTokenService([]byte(cfg.SigningSecret), ttl, cfg.Issuer, nil)
//	auther := userauth.NewAuthenticator(provider, tokens)
//	guard := userauth.NewTokenGuard(tokens, cfg.ContextKey)
package userauth
