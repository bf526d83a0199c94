package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/auth"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a user with a hashed password. Duplicate detection is left
// to the database unique constraint rather than a pre-read, so concurrent
// registrations of the same username cannot race past each other.
func (s *authService) Register(ctx context.Context, username, password, role string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     strings.ToLower(username),
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and mints a token. Unknown usernames and wrong
// passwords share one rejection path on purpose: a single sentinel keeps the
// two branches from ever drifting into distinguishable responses.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.ToLower(username))
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("find user: %w", err)
	}
	if err != nil || !auth.CheckPassword(password, user.PasswordHash) {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}
