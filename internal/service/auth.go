package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
	"carservice-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Login verifies staff credentials and issues an access token. Unknown
// usernames and wrong passwords produce the same error.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.DisplayName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}
