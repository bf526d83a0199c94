package main

import (
	"net/http"

	_ "github.com/safitriadelia339-dev/Api-Manajemen-film/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/auth"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/cache"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/config"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/db"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/handler"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/repository"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/router"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/service"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/pkg/logger"
)

// @title Film Catalog API
// @version 1.0
// @description Movie and director catalog with JWT authentication and role-gated mutations.
// @host localhost:3300
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("config load")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Director{},
		&model.Movie{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	movieRepo := repository.NewMovieRepository(gormDB)
	directorRepo := repository.NewDirectorRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	movieService := service.NewMovieService(movieRepo, cacheClient)
	directorService := service.NewDirectorService(directorRepo, cacheClient)

	// Handlers
	statusHandler := handler.NewStatusHandler()
	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	directorHandler := handler.NewDirectorHandler(directorService)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, statusHandler, authHandler, movieHandler, directorHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("server starting")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
