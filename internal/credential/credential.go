// Package credential reads the session credential a request carries. It never
// issues, renews or clears credentials; an external auth service owns them.
package credential

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Source resolves the bearer credential for a request.
type Source interface {
	Credential(c echo.Context) (string, bool)
}

// CookieSource reads the credential from a named cookie.
type CookieSource struct {
	Name string
}

// NewCookieSource creates a CookieSource for the given cookie name.
func NewCookieSource(name string) *CookieSource {
	return &CookieSource{Name: name}
}

// Credential implements Source. An empty cookie counts as absent.
func (s *CookieSource) Credential(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(s.Name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(c echo.Context) (string, bool)

func (f SourceFunc) Credential(c echo.Context) (string, bool) { return f(c) }

type contextKey struct{}

// WithCredential returns a copy of ctx carrying the resolved credential.
func WithCredential(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextKey{}, token)
}

// FromContext returns the credential stored by WithCredential.
func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contextKey{}).(string)
	return token, ok && token != ""
}
