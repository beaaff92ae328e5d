package userauth

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Users is the durable account store the auth core depends on. Email
// uniqueness must be enforced atomically by the store itself; callers never
// pre-check existence, so a duplicate insert surfaces as a Create error.
type Users interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
}

type users struct {
	db bun.IDB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns a bun-backed Users store.
func NewUsersRepository(db bun.IDB) Users {
	return &users{db: db}
}

func (r *users) GetByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.NewSelect().
		Model(user).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, mapSelectError(err, "select user by email failed")
	}
	return user, nil
}

func (r *users) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user := &User{}
	err := r.db.NewSelect().
		Model(user).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, mapSelectError(err, "select user by id failed")
	}
	return user, nil
}

func (r *users) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if _, err := r.db.NewInsert().Model(user).Exec(ctx); err != nil {
		// Duplicate email lands here through the unique index; callers
		// flatten it, so no constraint detail is attached.
		return nil, errors.Wrap(err, ErrStoreUnavailable.Category, "insert user failed").
			WithTextCode(ErrStoreUnavailable.TextCode)
	}
	return user, nil
}

func mapSelectError(err error, msg string) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	return errors.Wrap(err, ErrStoreUnavailable.Category, msg).
		WithTextCode(ErrStoreUnavailable.TextCode)
}

// CreateUsersSchema creates the users table if missing. Meant for the sqlite
// bootstrap in cmd/userauthd and for tests; production stores run their own
// migrations.
func CreateUsersSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*User)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to create users table")
	}
	return nil
}
