// Package stubbackend is a development stand-in for the profile backend. It
// serves a profile JSON file to holders of a valid bearer token and answers
// the way the real endpoint does on failure.
package stubbackend

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/spf13/afero"
)

// ProfilePath is the route of the profile endpoint.
const ProfilePath = "/api/profile"

// Options configures the stub backend.
type Options struct {
	Fs             afero.Fs
	ProfileFile    string
	JWTSecret      []byte
	AllowedOrigins []string
	// RequestsPerMinute limits each client IP. Zero disables the limit.
	RequestsPerMinute int
}

type contextKey string

const subjectKey = contextKey("subject")

// NewRouter builds the stub backend's HTTP handler.
func NewRouter(opts Options) http.Handler {
	src := &fileSource{fs: opts.Fs, path: opts.ProfileFile}
	v := newVerifier(opts.JWTSecret)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	if opts.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RequestsPerMinute, time.Minute))
	}
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Accept"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(bearerAuth(v))
		r.Get(ProfilePath, profileHandler(src))
	})
	return r
}

func bearerAuth(v *verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := v.verify(r.Header.Get("Authorization"))
			if err != nil {
				slog.Debug("stub backend rejected token", "error", err)
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": err.Error()})
				return
			}
			next.ServeHTTP(w, r.WithContext(withSubject(r.Context(), subject)))
		})
	}
}

func profileHandler(src *fileSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := src.load()
		switch {
		case errors.Is(err, errProfileNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
			return
		case err != nil:
			slog.Error("stub backend could not read profile", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "could not read profile"})
			return
		}

		if !json.Valid(data) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "profile file is not valid JSON"})
			return
		}

		slog.Debug("stub backend served profile", "subject", subjectFrom(r.Context()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
