package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/riofed5/Book-reservation/pkg/auth"
	md "github.com/riofed5/Book-reservation/pkg/middleware"
)

func newProtectedRouter() *echo.Echo {
	e := echo.New()
	ok := func(c echo.Context) error {
		id, _ := auth.FromContext(c.Request().Context())
		return c.String(http.StatusOK, id.UserID)
	}
	e.GET("/me", ok, md.JwtAuthentication)
	e.GET("/admin", ok, md.JwtAuthentication, md.AdminOnly)
	return e
}

func do(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if token != "" {
		r.Header.Set(md.AuthorizationHeader, "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestJwtAuthentication(t *testing.T) {
	auth.JWTKey = []byte("test-key")
	e := newProtectedRouter()

	t.Run("missing header", func(t *testing.T) {
		w := do(e, "/me", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "No Authorization Header")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
		r.Header.Set(md.AuthorizationHeader, "Basic abc")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Invalid Authorization Header")
	})

	t.Run("garbage token", func(t *testing.T) {
		w := do(e, "/me", "not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "JwtAccessDenied")
	})

	t.Run("token signed with another key", func(t *testing.T) {
		auth.JWTKey = []byte("other-key")
		token, _, err := auth.NewToken("u1", "u1@example.com", false)
		require.NoError(t, err)
		auth.JWTKey = []byte("test-key")

		w := do(e, "/me", token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "JwtAccessDenied")
	})

	t.Run("valid token exposes the identity", func(t *testing.T) {
		token, _, err := auth.NewToken("u1", "u1@example.com", false)
		require.NoError(t, err)

		w := do(e, "/me", token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "u1", w.Body.String())
	})
}

func TestAdminOnly(t *testing.T) {
	auth.JWTKey = []byte("test-key")
	e := newProtectedRouter()

	t.Run("regular user is rejected", func(t *testing.T) {
		token, _, err := auth.NewToken("u1", "u1@example.com", false)
		require.NoError(t, err)

		w := do(e, "/admin", token)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, w.Body.String(), "Admin required")
	})

	t.Run("admin passes through", func(t *testing.T) {
		token, _, err := auth.NewToken("root", "root@example.com", true)
		require.NoError(t, err)

		w := do(e, "/admin", token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "root", w.Body.String())
	})
}
