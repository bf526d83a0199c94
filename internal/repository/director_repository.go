package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
)

// DirectorRepository defines persistence operations for directors.
type DirectorRepository interface {
	Create(ctx context.Context, director *model.Director) error
	FindByID(ctx context.Context, id uint) (*model.Director, error)
	List(ctx context.Context) ([]model.Director, error)
	Update(ctx context.Context, director *model.Director) error
	Delete(ctx context.Context, id uint) error
}

type directorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository builds a GORM-backed repository.
func NewDirectorRepository(db *gorm.DB) DirectorRepository {
	return &directorRepository{db: db}
}

func (r *directorRepository) Create(ctx context.Context, director *model.Director) error {
	return r.db.WithContext(ctx).Create(director).Error
}

func (r *directorRepository) FindByID(ctx context.Context, id uint) (*model.Director, error) {
	var director model.Director
	if err := r.db.WithContext(ctx).First(&director, id).Error; err != nil {
		return nil, err
	}
	return &director, nil
}

func (r *directorRepository) List(ctx context.Context) ([]model.Director, error) {
	var directors []model.Director
	if err := r.db.WithContext(ctx).Order("id asc").Find(&directors).Error; err != nil {
		return nil, err
	}
	return directors, nil
}

func (r *directorRepository) Update(ctx context.Context, director *model.Director) error {
	res := r.db.WithContext(ctx).Model(&model.Director{ID: director.ID}).
		Select("Name", "BirthYear").
		Updates(director)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *directorRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Director{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
