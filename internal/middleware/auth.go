package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/profileview/internal/credential"
	"github.com/nfrund/profileview/internal/view"
)

// SessionGuardConfig configures the SessionGuard middleware.
type SessionGuardConfig struct {
	// Source resolves the credential for a request.
	Source credential.Source
	// LoginURL is where requests without a credential are sent.
	LoginURL string
	// OnMissing, if set, runs before the redirect for a missing credential.
	OnMissing func(c echo.Context)
}

// SessionGuard protects routes that need a session credential. Requests
// without one are redirected to the login view silently; the credential of
// all other requests is placed on the request context.
func SessionGuard(cfg SessionGuardConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := cfg.Source.Credential(c)
			if !ok {
				FromContext(c.Request().Context()).Debug("no session credential, redirecting to login")
				if cfg.OnMissing != nil {
					cfg.OnMissing(c)
				}
				return view.Redirect(c, cfg.LoginURL)
			}

			ctx := credential.WithCredential(c.Request().Context(), token)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
