package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nfrund/profileview/internal/handlers"
	"github.com/nfrund/profileview/internal/rendering"
	"github.com/nfrund/profileview/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!!"

func setupLoginTest(signInURL string) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	h := handlers.NewLoginHandler(rendering.NewUniversalRenderer(), signInURL)
	e.GET("/login", h.LoginGet)
	// expire simulates the profile view rejecting a session.
	e.GET("/expire", func(c echo.Context) error {
		view.SetFlashError(c, "Your session has expired. Please log in again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	})
	e.GET("/health", handlers.Health)
	return e
}

func TestLoginGet(t *testing.T) {
	t.Run("shows the sign-in link", func(t *testing.T) {
		e := setupLoginTest("https://auth.example.com/signin")

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `href="https://auth.example.com/signin"`)
		assert.NotContains(t, rec.Body.String(), "notification-error")
	})

	t.Run("shows the session expired notification once", func(t *testing.T) {
		e := setupLoginTest("")

		first := httptest.NewRecorder()
		e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/expire", nil))
		assert.Equal(t, http.StatusSeeOther, first.Code)

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		for _, ck := range first.Result().Cookies() {
			req.AddCookie(ck)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		body := rec.Body.String()
		assert.Contains(t, body, "Your session has expired. Please log in again.")
		assert.NotContains(t, body, "Sign in</a>", "no link without an auth service")
	})
}

func TestHealth(t *testing.T) {
	e := setupLoginTest("")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
