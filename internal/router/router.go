package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/config"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/handler"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/middleware"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/pkg/logger"
)

// Register wires routes and middleware.
//
// Reads on movies and directors are public. Creates require authentication;
// updates and deletes additionally require the admin role. The register-admin
// route is unauthenticated to match the original API surface; see DESIGN.md.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	statusHandler *handler.StatusHandler,
	authHandler *handler.AuthHandler,
	movieHandler *handler.MovieHandler,
	directorHandler *handler.DirectorHandler,
) {
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(requestLogger())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", statusHandler.Welcome)
	e.GET("/status", statusHandler.Status)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/register-admin", authHandler.RegisterAdmin)
	e.POST("/auth/login", authHandler.Login)

	authenticated := middleware.Authenticate(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// Movie routes
	e.GET("/movies", movieHandler.ListMovies)
	e.GET("/movies/:id", movieHandler.GetMovie)
	e.POST("/movies", movieHandler.CreateMovie, authenticated)
	e.PUT("/movies/:id", movieHandler.UpdateMovie, authenticated, adminOnly)
	e.DELETE("/movies/:id", movieHandler.DeleteMovie, authenticated, adminOnly)

	// Director routes
	e.GET("/directors", directorHandler.ListDirectors)
	e.GET("/directors/:id", directorHandler.GetDirector)
	e.POST("/directors", directorHandler.CreateDirector, authenticated)
	e.PUT("/directors/:id", directorHandler.UpdateDirector, authenticated, adminOnly)
	e.DELETE("/directors/:id", directorHandler.DeleteDirector, authenticated, adminOnly)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "route not found",
			Code:  "ROUTE_NOT_FOUND",
		})
	})
}

// requestLogger emits one structured line per request via the shared zerolog
// instance.
func requestLogger() echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Get().Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
