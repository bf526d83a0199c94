package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/cache"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/repository"
)

const movieCacheTTL = 5 * time.Minute

// MovieService exposes catalog operations for movies.
type MovieService interface {
	CreateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	GetMovie(ctx context.Context, id uint) (*model.Movie, error)
	ListMovies(ctx context.Context) ([]model.Movie, error)
	UpdateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error
}

type movieService struct {
	repo  repository.MovieRepository
	cache *cache.Client
}

// NewMovieService builds a MovieService with repository and cache.
func NewMovieService(repo repository.MovieRepository, cache *cache.Client) MovieService {
	return &movieService{repo: repo, cache: cache}
}

func (s *movieService) cacheKey(id uint) string {
	return fmt.Sprintf("movie:%d", id)
}

func (s *movieService) CreateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) GetMovie(ctx context.Context, id uint) (*model.Movie, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Movie
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrMovieNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(movie); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, movieCacheTTL)
	}
	return movie, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return s.repo.List(ctx)
}

func (s *movieService) UpdateMovie(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	if err := s.repo.Update(ctx, movie); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrMovieNotFound
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(movie.ID))
	return s.repo.FindByID(ctx, movie.ID)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrMovieNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
