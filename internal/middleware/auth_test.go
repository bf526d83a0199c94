package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/auth"
	"github.com/safitriadelia339-dev/Api-Manajemen-film/internal/model"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateToken(&model.User{
		ID:       1,
		Username: "alice",
		Role:     role,
	})
	assert.NoError(t, err)
	return token
}

// newTestServer wires one authenticated route and one admin-only route.
func newTestServer() *echo.Echo {
	e := echo.New()
	authenticated := Authenticate(testSecret)
	e.GET("/protected", func(c echo.Context) error {
		claims := ClaimsFrom(c)
		return c.JSON(http.StatusOK, map[string]string{"username": claims.Username})
	}, authenticated)
	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, authenticated, RequireRole(model.RoleAdmin))
	return e
}

func request(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := newTestServer()
	rec := request(e, "/protected", issueToken(t, model.RoleUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestAuthenticate_MissingToken(t *testing.T) {
	e := newTestServer()
	rec := request(e, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	e := newTestServer()
	rec := request(e, "/protected", "not-a-token")

	// Same rejection as a missing token: no hint about which check failed.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	missing := request(e, "/protected", "")
	assert.Equal(t, missing.Body.String(), rec.Body.String())
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	e := newTestServer()
	rec := request(e, "/admin", issueToken(t, model.RoleAdmin))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_UserForbidden(t *testing.T) {
	e := newTestServer()
	rec := request(e, "/admin", issueToken(t, model.RoleUser))

	// Authenticated but underprivileged: 403, not the uniform 401.
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_NoTokenIsUnauthenticated(t *testing.T) {
	e := newTestServer()
	rec := request(e, "/admin", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClaimsFrom_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, ClaimsFrom(c))
}
