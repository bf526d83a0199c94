package main

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/auth"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/config"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/db"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/repository"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/service"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/pkg/logger"
)

// Bootstrap credentials for the seeded admin. Override both in any
// environment that is not a throwaway development database.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type seedDirector struct {
	name      string
	birthYear int
	movies    []seedMovie
}

type seedMovie struct {
	title string
	year  int
}

var catalog = []seedDirector{
	{"Christopher Nolan", 1970, []seedMovie{
		{"Inception", 2010},
		{"Interstellar", 2014},
	}},
	{"Greta Gerwig", 1983, []seedMovie{
		{"Lady Bird", 2017},
		{"Little Women", 2019},
	}},
	{"Bong Joon-ho", 1969, []seedMovie{
		{"Parasite", 2019},
	}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("config load")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Director{}, &model.Movie{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret))

	if _, err := authService.Register(ctx, defaultAdminUsername, defaultAdminPassword, model.RoleAdmin); err != nil {
		if stderrors.Is(err, errors.ErrUsernameTaken) {
			log.Info().Str("username", defaultAdminUsername).Msg("admin already exists, skipping")
		} else {
			log.Fatal().Err(err).Msg("seed admin")
		}
	} else {
		log.Info().Str("username", defaultAdminUsername).Msg("admin created")
	}

	created, skipped, err := seedCatalog(ctx, gormDB)
	if err != nil {
		log.Fatal().Err(err).Msg("seed catalog")
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed completed")
}

// seedCatalog inserts the sample directors and movies, skipping entries that
// already exist so repeated runs stay idempotent.
func seedCatalog(ctx context.Context, gormDB *gorm.DB) (created, skipped int, err error) {
	for _, d := range catalog {
		var director model.Director
		res := gormDB.WithContext(ctx).Where("name = ?", d.name).First(&director)
		switch {
		case res.Error == nil:
			skipped++
		case stderrors.Is(res.Error, gorm.ErrRecordNotFound):
			director = model.Director{Name: d.name, BirthYear: d.birthYear}
			if err := gormDB.WithContext(ctx).Create(&director).Error; err != nil {
				return created, skipped, fmt.Errorf("create director %q: %w", d.name, err)
			}
			created++
		default:
			return created, skipped, fmt.Errorf("lookup director %q: %w", d.name, res.Error)
		}

		for _, m := range d.movies {
			var movie model.Movie
			res := gormDB.WithContext(ctx).Where("title = ? AND director_id = ?", m.title, director.ID).First(&movie)
			switch {
			case res.Error == nil:
				skipped++
			case stderrors.Is(res.Error, gorm.ErrRecordNotFound):
				movie = model.Movie{Title: m.title, Year: m.year, DirectorID: director.ID}
				if err := gormDB.WithContext(ctx).Create(&movie).Error; err != nil {
					return created, skipped, fmt.Errorf("create movie %q: %w", m.title, err)
				}
				created++
			default:
				return created, skipped, fmt.Errorf("lookup movie %q: %w", m.title, res.Error)
			}
		}
	}
	return created, skipped, nil
}
