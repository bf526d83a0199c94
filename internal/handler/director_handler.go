package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/service"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/pkg/logger"
)

// DirectorHandler handles director catalog endpoints.
type DirectorHandler struct {
	directorService service.DirectorService
}

// NewDirectorHandler creates a new director handler.
func NewDirectorHandler(directorService service.DirectorService) *DirectorHandler {
	return &DirectorHandler{directorService: directorService}
}

// DirectorRequest represents a director create/update payload.
type DirectorRequest struct {
	Name      string `json:"name" validate:"required"`
	BirthYear int    `json:"birth_year" validate:"required"`
}

// ListDirectors godoc
// @Summary List directors
// @Tags directors
// @Produce json
// @Success 200 {array} model.Director
// @Failure 500 {object} errors.ErrorResponse
// @Router /directors [get]
func (h *DirectorHandler) ListDirectors(c echo.Context) error {
	directors, err := h.directorService.ListDirectors(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "list directors")
	}
	return c.JSON(http.StatusOK, directors)
}

// GetDirector godoc
// @Summary Get a director by id
// @Tags directors
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} model.Director
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /directors/{id} [get]
func (h *DirectorHandler) GetDirector(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	director, err := h.directorService.GetDirector(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "get director")
	}
	return c.JSON(http.StatusOK, director)
}

// CreateDirector godoc
// @Summary Create a director
// @Tags directors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DirectorRequest true "Director payload"
// @Success 201 {object} model.Director
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /directors [post]
func (h *DirectorHandler) CreateDirector(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	director, err := h.directorService.CreateDirector(c.Request().Context(), &model.Director{
		Name:      req.Name,
		BirthYear: req.BirthYear,
	})
	if err != nil {
		return h.fail(c, err, "create director")
	}
	return c.JSON(http.StatusCreated, director)
}

// UpdateDirector godoc
// @Summary Update a director
// @Tags directors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Director ID"
// @Param request body DirectorRequest true "Director payload"
// @Success 200 {object} model.Director
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /directors/{id} [put]
func (h *DirectorHandler) UpdateDirector(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	director, err := h.directorService.UpdateDirector(c.Request().Context(), &model.Director{
		ID:        id,
		Name:      req.Name,
		BirthYear: req.BirthYear,
	})
	if err != nil {
		return h.fail(c, err, "update director")
	}
	return c.JSON(http.StatusOK, director)
}

// DeleteDirector godoc
// @Summary Delete a director
// @Tags directors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Director ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /directors/{id} [delete]
func (h *DirectorHandler) DeleteDirector(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.directorService.DeleteDirector(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "delete director")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "director deleted",
	})
}

func (h *DirectorHandler) bind(c echo.Context) (*DirectorRequest, error) {
	var req DirectorRequest
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

func (h *DirectorHandler) fail(c echo.Context, err error, op string) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		logger.Get().Error().Err(err).Msg(op + " failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
