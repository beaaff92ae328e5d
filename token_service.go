package userauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// HMACTokenService implements TokenService with a single symmetric key.
// The signing key is read once at construction, held in memory only, and is
// never logged or embedded in tokens.
type HMACTokenService struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	logger     Logger
}

var _ TokenService = (*HMACTokenService)(nil)

// signingMethod is the only accepted algorithm, for issuance and validation
// alike. Tokens carrying any other alg header, including "none", are rejected.
var signingMethod = jwt.SigningMethodHS256

// NewTokenService creates a TokenService signing with the given key. A zero
// ttl issues tokens without an expiration claim; sessions then never expire
// server-side.
func NewTokenService(signingKey []byte, ttl time.Duration, issuer string, logger Logger) *HMACTokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &HMACTokenService{
		signingKey: signingKey,
		ttl:        ttl,
		issuer:     issuer,
		logger:     logger,
	}
}

// Issue signs a session token whose subject is the given account id.
func (ts *HMACTokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty", errors.CategoryBadInput)
	}

	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   ts.issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
		UID: subject,
	}
	if ts.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ts.ttl))
	}

	token := jwt.NewWithClaims(signingMethod, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign session token")
	}
	return signed, nil
}

// Validate parses tokenString, recomputes the signature, and returns the
// decoded claims. Malformed structure, a signing method other than HS256,
// and signature mismatch all collapse into ErrTokenInvalid; the parse detail
// is logged, never returned.
func (ts *HMACTokenService) Validate(tokenString string) (AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validate rejected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		ts.logger.Debug("token validate failed", "error", err)
		return nil, errors.Wrap(err, ErrTokenInvalid.Category, ErrTokenInvalid.Message).
			WithTextCode(ErrTokenInvalid.TextCode).
			WithCode(errors.CodeForbidden)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		ts.logger.Error("token validate could not decode claims")
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
