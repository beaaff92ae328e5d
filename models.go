package userauth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the account model. PasswordHash is excluded from JSON outright;
// no response shape ever carries it.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string     `bun:"username,notnull" json:"username,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// identity adapts a User to the Identity interface without promoting the
// model's fields into method names.
type identity struct {
	user *User
}

// NewIdentity wraps a stored user as an Identity.
func NewIdentity(user *User) Identity {
	return identity{user: user}
}

func (i identity) ID() string {
	return i.user.ID.String()
}

func (i identity) Username() string {
	return i.user.Username
}

func (i identity) Email() string {
	return i.user.Email
}
