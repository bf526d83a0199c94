package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/auth"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/errors"
)

// Authenticate requires a valid bearer token on the request. Missing, invalid
// and expired tokens all get the same 401 body so callers cannot probe which
// validation step failed. On success the parsed token is stored under "user".
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "authentication required",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireRole runs after Authenticate and compares the role embedded in the
// token against the required one. A mismatch is 403: the caller is known but
// lacks privilege, which is deliberately distinct from the 401 above.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "authentication required",
					Code:  "UNAUTHORIZED",
				})
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "insufficient privileges",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims parsed by Authenticate, or nil when the
// request never passed authentication.
func ClaimsFrom(c echo.Context) *auth.Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
