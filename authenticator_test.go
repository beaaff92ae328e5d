package userauth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userauth "github.com/veloram/go-userauth"
)

type stubIdentity struct {
	id       string
	username string
	email    string
}

func (s stubIdentity) ID() string       { return s.id }
func (s stubIdentity) Username() string { return s.username }
func (s stubIdentity) Email() string    { return s.email }

func TestAutherLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues token bound to the verified identity", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		tokens := newTestTokenService()
		auther := userauth.NewAuthenticator(provider, tokens)

		provider.On("VerifyIdentity", mock.Anything, "a@x.com", "p1").
			Return(stubIdentity{id: "user-123", username: "al", email: "a@x.com"}, nil)

		token, err := auther.Login(ctx, "a@x.com", "p1")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := auther.SessionFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject())
		provider.AssertExpectations(t)
	})

	t.Run("verification failure passes through unchanged", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		auther := userauth.NewAuthenticator(provider, newTestTokenService())

		provider.On("VerifyIdentity", mock.Anything, "a@x.com", "bad").
			Return(nil, userauth.ErrInvalidCredentials)

		_, err := auther.Login(ctx, "a@x.com", "bad")
		assert.ErrorIs(t, err, userauth.ErrInvalidCredentials)
	})

	t.Run("issuance failure surfaces", func(t *testing.T) {
		provider := &MockIdentityProvider{}
		tokens := &MockTokenService{}
		auther := userauth.NewAuthenticator(provider, tokens)

		provider.On("VerifyIdentity", mock.Anything, "a@x.com", "p1").
			Return(stubIdentity{id: "user-123"}, nil)
		tokens.On("Issue", "user-123").Return("", assert.AnError)

		_, err := auther.Login(ctx, "a@x.com", "p1")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAutherSessionFromToken(t *testing.T) {
	provider := &MockIdentityProvider{}
	auther := userauth.NewAuthenticator(provider, newTestTokenService())

	_, err := auther.SessionFromToken("garbage")
	assert.Error(t, err)
}
