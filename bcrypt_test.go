package userauth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	userauth "github.com/veloram/go-userauth"
)

func newTestHasher() *userauth.BcryptHasher {
	return userauth.NewBcryptHasher(bcrypt.MinCost, 2)
}

func TestBcryptHasherHash(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true, // bcrypt would hash empty strings, we reject them
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(ctx, tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
			assert.False(t, strings.Contains(hash, tt.password))

			match, err := hasher.Verify(ctx, tt.password, hash)
			assert.NoError(t, err)
			assert.True(t, match)
		})
	}
}

func TestBcryptHasherSaltedDigests(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()
	password := "same-password"

	first, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	// Each hash embeds a fresh salt, so digests differ but both verify.
	assert.NotEqual(t, first, second)

	match, err := hasher.Verify(ctx, password, first)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify(ctx, password, second)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasherVerify(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	password := "testPassword123!"
	hash, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	tests := []struct {
		name      string
		password  string
		hash      string
		wantMatch bool
		wantErr   bool
	}{
		{
			name:      "matching password",
			password:  password,
			hash:      hash,
			wantMatch: true,
		},
		{
			name:     "wrong password is a normal mismatch",
			password: "wrongPassword",
			hash:     hash,
		},
		{
			name:     "malformed hash is an error",
			password: password,
			hash:     "invalidhash",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := hasher.Verify(ctx, tt.password, tt.hash)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, match)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantMatch, match)
		})
	}
}

func TestBcryptHasherCanceledContext(t *testing.T) {
	hasher := userauth.NewBcryptHasher(bcrypt.MinCost, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "password")
	assert.Error(t, err)

	_, err = hasher.Verify(ctx, "password", "whatever")
	assert.Error(t, err)
}

func TestBcryptHasherCostFallback(t *testing.T) {
	hasher := userauth.NewBcryptHasher(99, 0)
	assert.Equal(t, userauth.DefaultBcryptCost, hasher.Cost())

	hasher = userauth.NewBcryptHasher(bcrypt.MinCost, 4)
	assert.Equal(t, bcrypt.MinCost, hasher.Cost())
}
