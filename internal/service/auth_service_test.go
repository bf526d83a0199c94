package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/auth"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "Alice",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "duplicate username",
			username: "alice",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrUsernameTaken,
		},
		{
			name:     "admin registration",
			username: "root",
			password: "secret1",
			role:     model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			user, err := svc.Register(context.Background(), tt.username, tt.password, tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				// Stored lower-cased, hash verifiable, plaintext never kept.
				assert.Equal(t, strings.ToLower(tt.username), user.Username)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.True(t, auth.CheckPassword(tt.password, user.PasswordHash))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_LowercasesUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Username == "mixedcase"
	})).Return(nil)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
	user, err := svc.Register(context.Background(), "MixedCase", "secret1", model.RoleUser)

	assert.NoError(t, err)
	assert.Equal(t, "mixedcase", user.Username)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	assert.NoError(t, err)
	stored := &model.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: hash,
		Role:         model.RoleUser,
	}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "uppercase username is normalized",
			username: "ALICE",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown user",
			username: "mallory",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "mallory").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "alice").Return(stored, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			token, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, stored.ID, claims.UserID)
				assert.Equal(t, stored.Username, claims.Username)
				assert.Equal(t, stored.Role, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// TestAuthService_Login_NoEnumerationSignal pins the property that an unknown
// username and a wrong password produce the exact same error value.
func TestAuthService_Login_NoEnumerationSignal(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
		ID: 1, Username: "alice", PasswordHash: hash, Role: model.RoleUser,
	}, nil)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))

	_, unknownUserErr := svc.Login(context.Background(), "ghost", "secret1")
	_, wrongPasswordErr := svc.Login(context.Background(), "alice", "nope-nope")

	assert.Equal(t, unknownUserErr, wrongPasswordErr)
	assert.ErrorIs(t, unknownUserErr, errors.ErrInvalidCredentials)
}
