package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/profileview/internal/rendering"
	"github.com/nfrund/profileview/internal/view"
	"github.com/nfrund/profileview/web/src/templates/layouts"
	"github.com/nfrund/profileview/web/src/templates/pages"
)

// LoginHandler serves the landing view used as the login redirect target.
// It only displays pending notifications and points at the auth service.
type LoginHandler struct {
	renderer  rendering.Renderer
	signInURL string
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(renderer rendering.Renderer, signInURL string) *LoginHandler {
	return &LoginHandler{
		renderer:  renderer,
		signInURL: signInURL,
	}
}

// LoginGet renders the login landing page (GET /login).
func (h *LoginHandler) LoginGet(c echo.Context) error {
	flashes := view.GetFlashData(c)
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Sign in", flashes, pages.Login(h.signInURL)))
}

// Health reports liveness (GET /health).
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
