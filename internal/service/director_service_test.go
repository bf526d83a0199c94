package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
)

// MockDirectorRepository is a mock implementation of DirectorRepository.
type MockDirectorRepository struct {
	mock.Mock
}

func (m *MockDirectorRepository) Create(ctx context.Context, director *model.Director) error {
	args := m.Called(ctx, director)
	return args.Error(0)
}

func (m *MockDirectorRepository) FindByID(ctx context.Context, id uint) (*model.Director, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Director), args.Error(1)
}

func (m *MockDirectorRepository) List(ctx context.Context) ([]model.Director, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Director), args.Error(1)
}

func (m *MockDirectorRepository) Update(ctx context.Context, director *model.Director) error {
	args := m.Called(ctx, director)
	return args.Error(0)
}

func (m *MockDirectorRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDirectorService_CreateDirector(t *testing.T) {
	mockRepo := new(MockDirectorRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Director")).Return(nil)

	svc := NewDirectorService(mockRepo, nil)
	director, err := svc.CreateDirector(context.Background(), &model.Director{
		Name: "Greta Gerwig", BirthYear: 1983,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Greta Gerwig", director.Name)
	mockRepo.AssertExpectations(t)
}

func TestDirectorService_GetDirector_NotFound(t *testing.T) {
	mockRepo := new(MockDirectorRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewDirectorService(mockRepo, nil)
	director, err := svc.GetDirector(context.Background(), 99)

	assert.ErrorIs(t, err, errors.ErrDirectorNotFound)
	assert.Nil(t, director)
}

func TestDirectorService_DeleteDirector(t *testing.T) {
	mockRepo := new(MockDirectorRepository)
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

	svc := NewDirectorService(mockRepo, nil)
	assert.NoError(t, svc.DeleteDirector(context.Background(), 1))
	mockRepo.AssertExpectations(t)
}

func TestDirectorService_DeleteDirector_NotFound(t *testing.T) {
	mockRepo := new(MockDirectorRepository)
	mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

	svc := NewDirectorService(mockRepo, nil)
	err := svc.DeleteDirector(context.Background(), 99)

	assert.ErrorIs(t, err, errors.ErrDirectorNotFound)
}
