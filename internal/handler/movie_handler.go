package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/service"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/pkg/logger"
)

// MovieHandler handles movie catalog endpoints.
type MovieHandler struct {
	movieService service.MovieService
}

// NewMovieHandler creates a new movie handler.
func NewMovieHandler(movieService service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// MovieRequest represents a movie create/update payload.
type MovieRequest struct {
	Title      string `json:"title" validate:"required"`
	DirectorID uint   `json:"director_id" validate:"required"`
	Year       int    `json:"year" validate:"required"`
}

// ListMovies godoc
// @Summary List movies with their directors
// @Tags movies
// @Produce json
// @Success 200 {array} model.Movie
// @Failure 500 {object} errors.ErrorResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c echo.Context) error {
	movies, err := h.movieService.ListMovies(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "list movies")
	}
	return c.JSON(http.StatusOK, movies)
}

// GetMovie godoc
// @Summary Get a movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	movie, err := h.movieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "get movie")
	}
	return c.JSON(http.StatusOK, movie)
}

// CreateMovie godoc
// @Summary Create a movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MovieRequest true "Movie payload"
// @Success 201 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	movie, err := h.movieService.CreateMovie(c.Request().Context(), &model.Movie{
		Title:      req.Title,
		DirectorID: req.DirectorID,
		Year:       req.Year,
	})
	if err != nil {
		return h.fail(c, err, "create movie")
	}
	return c.JSON(http.StatusCreated, movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param request body MovieRequest true "Movie payload"
// @Success 200 {object} model.Movie
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	movie, err := h.movieService.UpdateMovie(c.Request().Context(), &model.Movie{
		ID:         id,
		Title:      req.Title,
		DirectorID: req.DirectorID,
		Year:       req.Year,
	})
	if err != nil {
		return h.fail(c, err, "update movie")
	}
	return c.JSON(http.StatusOK, movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 204 "deleted"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.movieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "delete movie")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MovieHandler) bind(c echo.Context) (*MovieRequest, error) {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return &req, nil
}

func (h *MovieHandler) fail(c echo.Context, err error, op string) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		logger.Get().Error().Err(err).Msg(op + " failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseID reads the numeric :id route parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
