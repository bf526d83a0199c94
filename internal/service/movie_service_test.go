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

// MockMovieRepository is a mock implementation of MovieRepository.
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uint) (*model.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieRepository) List(ctx context.Context) ([]model.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *model.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMovieService_GetMovie(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Movie{
		ID: 1, Title: "Inception", Year: 2010, DirectorID: 1,
	}, nil)

	svc := NewMovieService(mockRepo, nil)
	movie, err := svc.GetMovie(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Inception", movie.Title)
	mockRepo.AssertExpectations(t)
}

func TestMovieService_GetMovie_NotFound(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewMovieService(mockRepo, nil)
	movie, err := svc.GetMovie(context.Background(), 99)

	assert.ErrorIs(t, err, errors.ErrMovieNotFound)
	assert.Nil(t, movie)
}

func TestMovieService_UpdateMovie_NotFound(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Movie")).Return(gorm.ErrRecordNotFound)

	svc := NewMovieService(mockRepo, nil)
	movie, err := svc.UpdateMovie(context.Background(), &model.Movie{ID: 99, Title: "Nope", Year: 2000, DirectorID: 1})

	assert.ErrorIs(t, err, errors.ErrMovieNotFound)
	assert.Nil(t, movie)
}

func TestMovieService_UpdateMovie(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Movie")).Return(nil)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Movie{
		ID: 1, Title: "Inception", Year: 2010, DirectorID: 2,
	}, nil)

	svc := NewMovieService(mockRepo, nil)
	movie, err := svc.UpdateMovie(context.Background(), &model.Movie{ID: 1, Title: "Inception", Year: 2010, DirectorID: 2})

	assert.NoError(t, err)
	assert.Equal(t, uint(2), movie.DirectorID)
	mockRepo.AssertExpectations(t)
}

func TestMovieService_DeleteMovie_NotFound(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

	svc := NewMovieService(mockRepo, nil)
	err := svc.DeleteMovie(context.Background(), 99)

	assert.ErrorIs(t, err, errors.ErrMovieNotFound)
}

func TestMovieService_ListMovies(t *testing.T) {
	mockRepo := new(MockMovieRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Movie{
		{ID: 1, Title: "Inception", Year: 2010, DirectorID: 1},
		{ID: 2, Title: "Interstellar", Year: 2014, DirectorID: 1},
	}, nil)

	svc := NewMovieService(mockRepo, nil)
	movies, err := svc.ListMovies(context.Background())

	assert.NoError(t, err)
	assert.Len(t, movies, 2)
}
