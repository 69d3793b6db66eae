package stubbackend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/profileview/internal/domain"
	"github.com/nfrund/profileview/internal/profileapi"
)

var testSecret = []byte("stub-secret-for-tests")

const profileJSON = `{"fullName":"Asha Verma","email":"asha@example.com","photo":true}`

func newTestServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	srv := httptest.NewServer(NewRouter(Options{
		Fs:             fs,
		ProfileFile:    "profile.json",
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:8080"},
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doGet(t *testing.T, url, auth string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestProfileEndpoint(t *testing.T) {
	srv := newTestServer(t, map[string]string{"profile.json": profileJSON})

	valid, err := IssueToken(testSecret, "candidate-1", time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(testSecret, "candidate-1", -time.Minute)
	require.NoError(t, err)
	foreign, err := IssueToken([]byte("some-other-secret"), "candidate-1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		auth   string
		status int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong signature", "Bearer " + foreign, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(t, srv.URL+ProfilePath, tt.auth)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		})
	}
}

func TestProfileEndpoint_Files(t *testing.T) {
	token, err := IssueToken(testSecret, "candidate-1", time.Hour)
	require.NoError(t, err)

	t.Run("missing file", func(t *testing.T) {
		srv := newTestServer(t, nil)
		resp := doGet(t, srv.URL+ProfilePath, "Bearer "+token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := newTestServer(t, map[string]string{"profile.json": "{"})
		resp := doGet(t, srv.URL+ProfilePath, "Bearer "+token)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestProfileEndpoint_CORS(t *testing.T) {
	srv := newTestServer(t, map[string]string{"profile.json": profileJSON})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+ProfilePath, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:8080", resp.Header.Get("Access-Control-Allow-Origin"))
}

// The stub answers the way the profile client expects from the real backend.
func TestStubWithProfileClient(t *testing.T) {
	srv := newTestServer(t, map[string]string{"profile.json": profileJSON})
	client := profileapi.New(srv.URL+ProfilePath, time.Second)

	token, err := IssueToken(testSecret, "candidate-1", time.Hour)
	require.NoError(t, err)

	rec, err := client.FetchProfile(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", rec["email"])

	expired, err := IssueToken(testSecret, "candidate-1", -time.Minute)
	require.NoError(t, err)
	_, err = client.FetchProfile(context.Background(), expired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifier(t *testing.T) {
	v := newVerifier(testSecret)
	token, err := IssueToken(testSecret, "candidate-9", time.Hour)
	require.NoError(t, err)

	subject, err := v.verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "candidate-9", subject)

	_, err = v.verify("")
	assert.ErrorIs(t, err, errMissingToken)
}

func TestProfileEndpoint_RateLimit(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "profile.json", []byte(profileJSON), 0o644))
	srv := httptest.NewServer(NewRouter(Options{
		Fs:                fs,
		ProfileFile:       "profile.json",
		JWTSecret:         testSecret,
		RequestsPerMinute: 2,
	}))
	t.Cleanup(srv.Close)

	token, err := IssueToken(testSecret, "candidate-1", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(t, srv.URL+ProfilePath, "Bearer "+token).StatusCode)
	assert.Equal(t, http.StatusOK, doGet(t, srv.URL+ProfilePath, "Bearer "+token).StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, doGet(t, srv.URL+ProfilePath, "Bearer "+token).StatusCode)
}
