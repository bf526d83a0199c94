package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
)

// UserRepository defines credential persistence. Username uniqueness is
// enforced by the database constraint; Create surfaces a violated insert as
// gorm.ErrDuplicatedKey (the connection is opened with TranslateError).
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
