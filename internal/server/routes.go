package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/profileview/internal/app"
	"github.com/nfrund/profileview/internal/handlers"
	"github.com/nfrund/profileview/web"
)

// RegisterRoutes sets up the routes that live outside any module.
func (s *Server) RegisterRoutes() {
	loginHandler := handlers.NewLoginHandler(s.deps.Renderer, s.Cfg.AuthServiceURL)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, app.ProfileBasePath)
	})
	s.E.GET("/login", loginHandler.LoginGet)
	s.E.GET("/health", handlers.Health)
}
