package userauth_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	userauth "github.com/veloram/go-userauth"
)

// MockUsers implements userauth.Users for testing
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (*userauth.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*userauth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) GetByID(ctx context.Context, id uuid.UUID) (*userauth.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*userauth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) Create(ctx context.Context, user *userauth.User) (*userauth.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*userauth.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockIdentityProvider implements userauth.IdentityProvider for testing
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, email, password string) (userauth.Identity, error) {
	args := m.Called(ctx, email, password)
	if id, ok := args.Get(0).(userauth.Identity); ok {
		return id, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByID(ctx context.Context, id string) (userauth.Identity, error) {
	args := m.Called(ctx, id)
	if ident, ok := args.Get(0).(userauth.Identity); ok {
		return ident, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTokenService implements userauth.TokenService for testing
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (userauth.AuthClaims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(userauth.AuthClaims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}
