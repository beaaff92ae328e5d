package userauth

import "github.com/goliatone/go-errors"

const (
	TextCodeInvalidCreds    = "invalid_credentials"
	TextCodeTokenInvalid    = "token_invalid"
	TextCodeTokenExpired    = "token_expired"
	TextCodeEmptyPassword   = "empty_password"
	TextCodeAccountNotFound = "account_not_found"
	TextCodeAccountCreation = "account_creation_failed"
	TextCodeStoreFailure    = "store_unavailable"
)

// ErrInvalidCredentials is the single outcome for both unknown email and
// password mismatch. Callers must not be able to tell which one happened.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrTokenInvalid covers malformed structure, unexpected signing algorithm,
// and signature mismatch. The distinction is logged, never returned.
var ErrTokenInvalid = errors.New("invalid session token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenInvalid).
	WithCode(errors.CodeForbidden)

// ErrTokenExpired is returned for structurally valid tokens past their expiry.
// Only reachable when a token TTL is configured; the default issues
// non-expiring tokens.
var ErrTokenExpired = errors.New("session token expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeForbidden)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// ErrAccountNotFound is returned when an account lookup comes back empty,
// including a valid token whose subject has since been deleted.
var ErrAccountNotFound = errors.New("account not found", errors.CategoryNotFound).
	WithTextCode(TextCodeAccountNotFound).
	WithCode(errors.CodeNotFound)

// ErrAccountCreation is the flattened signup failure. Duplicate email, store
// outage, and hashing failure all collapse into it so responses never reveal
// which field or constraint was the cause.
var ErrAccountCreation = errors.New("unable to create account", errors.CategoryInternal).
	WithTextCode(TextCodeAccountCreation).
	WithCode(errors.CodeInternal)

// ErrStoreUnavailable wraps unexpected user store failures.
var ErrStoreUnavailable = errors.New("user store unavailable", errors.CategoryInternal).
	WithTextCode(TextCodeStoreFailure).
	WithCode(errors.CodeInternal)
