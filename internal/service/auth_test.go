package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/security"
)

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(userID int64, username, displayName string) (string, error) {
	args := m.Called(userID, username, displayName)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Validate(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

func staffUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           1,
		Username:     "mike",
		DisplayName:  "Mike",
		PasswordHash: string(hash),
	}
}

func TestAuthService_Login(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokens := new(MockTokenManager)
	svc := NewAuthService(userRepo, tokens)

	userRepo.On("GetByUsername", mock.Anything, "mike").Return(staffUser(t, "s3cret"), nil)
	tokens.On("Generate", int64(1), "mike", "Mike").Return("signed-token", nil)

	token, user, err := svc.Login(context.Background(), "mike", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "mike", user.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokens := new(MockTokenManager)
	svc := NewAuthService(userRepo, tokens)

	userRepo.On("GetByUsername", mock.Anything, "mike").Return(staffUser(t, "s3cret"), nil)

	_, _, err := svc.Login(context.Background(), "mike", "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokens := new(MockTokenManager)
	svc := NewAuthService(userRepo, tokens)

	userRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, domain.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
