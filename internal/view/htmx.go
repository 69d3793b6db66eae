package view

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	headerHXRequest  = "HX-Request"
	headerHXRedirect = "HX-Redirect"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get(headerHXRequest) == "true"
}

// Redirect navigates the browser to url. htmx requests cannot follow a 303
// into a full page, so they get an HX-Redirect header instead.
func Redirect(c echo.Context, url string) error {
	if IsHTMX(c) {
		c.Response().Header().Set(headerHXRedirect, url)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, url)
}
