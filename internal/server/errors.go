package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs an error handler that logs unhandled errors
// with a stack trace and leaves echo's own HTTP errors to the default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				slog.Error("HTTP error", "status", he.Code, "error", err, "path", c.Request().URL.Path)
			}
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		slog.Error("Internal Server Error (Unhandled)",
			"error", err.Error(),
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)
		e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusInternalServerError), c)
	}
}
