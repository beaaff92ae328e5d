package userauth

import (
	"context"
	stderrors "errors"
	"runtime"

	"github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// DefaultBcryptCost balances brute-force resistance against login latency.
const DefaultBcryptCost = 10

// BcryptHasher hashes and verifies passwords with bcrypt. The produced hash
// embeds its own salt and cost, so verification needs no side channel.
//
// Hashing is CPU-bound; a weighted semaphore bounds how many hash or verify
// operations run at once so a burst of signups cannot starve unrelated
// requests of worker threads.
type BcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher with the given cost factor. maxConcurrent
// caps in-flight hash operations; zero or negative falls back to GOMAXPROCS.
// Costs outside bcrypt's supported range fall back to DefaultBcryptCost.
func NewBcryptHasher(cost, maxConcurrent int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}
	return &BcryptHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Cost returns the configured cost factor.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash generates a salted hash of the given password. Empty passwords are
// rejected; bcrypt would happily hash them, which hides client bugs.
func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "hashing canceled before start")
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}
	return string(hash), nil
}

// Verify recomputes the hash using the salt and cost embedded in hash and
// compares digests in constant time. A mismatch is a normal false result;
// only a malformed stored hash produces an error.
func (h *BcryptHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, errors.CategoryInternal, "verification canceled before start")
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, errors.Wrap(err, errors.CategoryInternal, "stored credential hash is malformed")
}
