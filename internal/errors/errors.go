package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMovieNotFound is returned when a movie is not found.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrDirectorNotFound is returned when a director is not found.
	ErrDirectorNotFound = errors.New("director not found")
	// ErrUsernameTaken is returned when registering an already-used username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is the single outcome for unknown-user and
	// wrong-password logins; callers must not be able to tell which it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unclassified
// collapses into one opaque 500 so store internals never reach the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMovieNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MOVIE_NOT_FOUND")
	case errors.Is(err, ErrDirectorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DIRECTOR_NOT_FOUND")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
