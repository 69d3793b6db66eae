package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/profileview/internal/domain"
	"github.com/nfrund/profileview/internal/modules/myprofile"
	"github.com/nfrund/profileview/internal/registry"
	"github.com/nfrund/profileview/internal/testutils"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})
	e.GET("/test-http-error", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, `error="a deliberate unhandled error occurred"`)
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")

	logBuffer.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test-http-error", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, logBuffer.String(), "client errors are not logged")
}

func newTestServer(t *testing.T, backendStatus int, body any) (*Server, *testutils.Backend) {
	t.Helper()

	backend := testutils.NewBackend(t, backendStatus, body)
	s, err := New(testutils.ConfigForTests(t, backend.URL))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })
	return s, backend
}

type request struct {
	path    string
	token   string
	htmx    bool
	cookies []*http.Cookie
}

func (s *Server) get(r request) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, r.path, nil)
	if r.token != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: r.token})
	}
	for _, ck := range r.cookies {
		req.AddCookie(ck)
	}
	if r.htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func TestServer_ProfileView(t *testing.T) {
	s, backend := newTestServer(t, http.StatusOK, testutils.FullProfile())

	page := s.get(request{path: "/profile", token: "token-abc"})
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `hx-get="/profile/details"`)
	assert.NotEmpty(t, page.Header().Get(echo.HeaderXRequestID))
	assert.Empty(t, backend.Requests(), "the page shell does not fetch")

	details := s.get(request{path: "/profile/details", token: "token-abc", htmx: true})
	require.Equal(t, http.StatusOK, details.Code)
	html := details.Body.String()
	assert.Contains(t, html, "<h2>Personal Details</h2>")
	assert.Contains(t, html, "<h2>Agreements</h2>")
	assert.Contains(t, html, "asha@example.com")

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer token-abc", reqs[0].Header.Get("Authorization"))
}

func TestServer_MissingCredential(t *testing.T) {
	s, backend := newTestServer(t, http.StatusOK, testutils.FullProfile())

	rec := s.get(request{path: "/profile"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, backend.Requests())

	login := s.get(request{path: "/login", cookies: rec.Result().Cookies()})
	assert.Equal(t, http.StatusOK, login.Code)
	assert.Contains(t, login.Body.String(), `href="https://auth.example.com/signin"`)
	assert.NotContains(t, login.Body.String(), "notification-error")
}

func TestServer_ExpiredSession(t *testing.T) {
	s, _ := newTestServer(t, http.StatusUnauthorized, map[string]string{"message": "token expired"})

	rec := s.get(request{path: "/profile/details", token: "stale"})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	login := s.get(request{path: "/login", cookies: rec.Result().Cookies()})
	assert.Contains(t, login.Body.String(), domain.MsgSessionExpired)
}

func TestServer_BackendFailure(t *testing.T) {
	s, _ := newTestServer(t, http.StatusInternalServerError, map[string]string{"message": "database offline"})

	rec := s.get(request{path: "/profile/details", token: "token", htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "database offline")
	assert.Contains(t, rec.Body.String(), "profile-empty")
}

func TestServer_Routes(t *testing.T) {
	s, _ := newTestServer(t, http.StatusOK, testutils.FullProfile())

	root := s.get(request{path: "/"})
	assert.Equal(t, http.StatusSeeOther, root.Code)
	assert.Equal(t, "/profile", root.Header().Get(echo.HeaderLocation))

	health := s.get(request{path: "/health"})
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "OK", health.Body.String())

	css := s.get(request{path: "/static/css/profile.css"})
	assert.Equal(t, http.StatusOK, css.Code)

	_, ok := registry.Get(s.Registry(), myprofile.HandlerKey)
	assert.True(t, ok, "modules register their services")
}
