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

const directorCacheTTL = 5 * time.Minute

// DirectorService exposes catalog operations for directors.
type DirectorService interface {
	CreateDirector(ctx context.Context, director *model.Director) (*model.Director, error)
	GetDirector(ctx context.Context, id uint) (*model.Director, error)
	ListDirectors(ctx context.Context) ([]model.Director, error)
	UpdateDirector(ctx context.Context, director *model.Director) (*model.Director, error)
	DeleteDirector(ctx context.Context, id uint) error
}

type directorService struct {
	repo  repository.DirectorRepository
	cache *cache.Client
}

// NewDirectorService builds a DirectorService with repository and cache.
func NewDirectorService(repo repository.DirectorRepository, cache *cache.Client) DirectorService {
	return &directorService{repo: repo, cache: cache}
}

func (s *directorService) cacheKey(id uint) string {
	return fmt.Sprintf("director:%d", id)
}

func (s *directorService) CreateDirector(ctx context.Context, director *model.Director) (*model.Director, error) {
	if err := s.repo.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func (s *directorService) GetDirector(ctx context.Context, id uint) (*model.Director, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Director
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	director, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrDirectorNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(director); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, directorCacheTTL)
	}
	return director, nil
}

func (s *directorService) ListDirectors(ctx context.Context) ([]model.Director, error) {
	return s.repo.List(ctx)
}

func (s *directorService) UpdateDirector(ctx context.Context, director *model.Director) (*model.Director, error) {
	if err := s.repo.Update(ctx, director); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrDirectorNotFound
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(director.ID))
	return s.repo.FindByID(ctx, director.ID)
}

func (s *directorService) DeleteDirector(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrDirectorNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
