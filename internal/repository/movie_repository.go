package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
)

// MovieRepository defines persistence operations for movies.
type MovieRepository interface {
	Create(ctx context.Context, movie *model.Movie) error
	FindByID(ctx context.Context, id uint) (*model.Movie, error)
	List(ctx context.Context) ([]model.Movie, error)
	Update(ctx context.Context, movie *model.Movie) error
	Delete(ctx context.Context, id uint) error
}

type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository builds a GORM-backed repository.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.WithContext(ctx).Preload("Director").First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) List(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.WithContext(ctx).Preload("Director").Order("id asc").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *model.Movie) error {
	res := r.db.WithContext(ctx).Model(&model.Movie{ID: movie.ID}).
		Select("Title", "Year", "DirectorID").
		Updates(movie)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Movie{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
