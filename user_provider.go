package userauth

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// UserProvider resolves identities against a Users store and a
// PasswordHasher. It is the only place that compares credentials, and it
// flattens every compare failure into ErrInvalidCredentials so callers cannot
// distinguish an unknown email from a wrong password.
type UserProvider struct {
	store  Users
	hasher PasswordHasher
	logger Logger
}

var (
	_ IdentityProvider  = (*UserProvider)(nil)
	_ AccountRegisterer = (*UserProvider)(nil)
)

// NewUserProvider will create a new UserProvider
func NewUserProvider(store Users, hasher PasswordHasher) *UserProvider {
	return &UserProvider{
		store:  store,
		hasher: hasher,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	if l != nil {
		u.logger = l
	}
	return u
}

// VerifyIdentity will find the user by email, compare the password, and
// return the identity.
func (u *UserProvider) VerifyIdentity(ctx context.Context, email, password string) (Identity, error) {
	user, err := u.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	match, err := u.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to verify credential")
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return NewIdentity(user), nil
}

// FindIdentityByID resolves an identity from a token subject. A subject that
// does not parse as an id, or that no longer exists in the store, both come
// back as not found: a validly signed token can outlive its account.
func (u *UserProvider) FindIdentityByID(ctx context.Context, id string) (Identity, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	user, err := u.store.GetByID(ctx, uid)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user by id")
	}

	return NewIdentity(user), nil
}

// RegisterUser hashes the password and inserts the account. Existence is
// never pre-checked; the store's unique index is the single arbiter of
// duplicate emails, which keeps concurrent signups race-free.
func (u *UserProvider) RegisterUser(ctx context.Context, username, email, password string) (*User, error) {
	hash, err := u.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := u.store.Create(ctx, user)
	if err != nil {
		u.logger.Error("register user insert failed", "error", err)
		return nil, errors.Wrap(err, ErrAccountCreation.Category, ErrAccountCreation.Message).
			WithTextCode(ErrAccountCreation.TextCode)
	}
	return created, nil
}
