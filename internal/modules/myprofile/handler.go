package myprofile

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"

	"github.com/nfrund/profileview/internal/credential"
	"github.com/nfrund/profileview/internal/domain"
	"github.com/nfrund/profileview/internal/middleware"
	"github.com/nfrund/profileview/internal/profile"
	"github.com/nfrund/profileview/internal/pubsub"
	"github.com/nfrund/profileview/internal/rendering"
	"github.com/nfrund/profileview/internal/view"
	"github.com/nfrund/profileview/web/src/templates/layouts"
	"github.com/nfrund/profileview/web/src/templates/pages"
	"github.com/nfrund/profileview/web/src/templates/partials"
)

const pageTitle = "My Profile"

// Fetcher reads the profile record authorized by a credential.
type Fetcher interface {
	FetchProfile(ctx context.Context, credential string) (profile.Record, error)
}

// Handler serves the profile view.
type Handler struct {
	fetcher    Fetcher
	renderer   rendering.Renderer
	publisher  pubsub.Publisher
	loginURL   string
	detailsURL string
	policy     profile.PlaceholderPolicy
}

// NewHandler creates a Handler. publisher may be nil.
func NewHandler(fetcher Fetcher, renderer rendering.Renderer, publisher pubsub.Publisher, loginURL, detailsURL string, policy profile.PlaceholderPolicy) *Handler {
	return &Handler{
		fetcher:    fetcher,
		renderer:   renderer,
		publisher:  publisher,
		loginURL:   loginURL,
		detailsURL: detailsURL,
		policy:     policy,
	}
}

// Page renders the view shell in its pending state. The loading indicator
// loads the details fragment once the page is displayed.
func (h *Handler) Page(c echo.Context) error {
	content := pages.Loading(h.detailsURL)
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(pageTitle, view.GetFlashData(c), content))
}

// Details performs the single profile fetch for this view activation and
// renders its result.
func (h *Handler) Details(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	token, ok := credential.FromContext(ctx)
	if !ok {
		// SessionGuard normally stops these requests first.
		h.publish(c, pubsub.ViewOutcome{Outcome: pubsub.OutcomeSessionMissing})
		return view.Redirect(c, h.loginURL)
	}

	rec, err := h.fetcher.FetchProfile(ctx, token)
	switch {
	case err == nil && rec != nil:
		h.publish(c, pubsub.ViewOutcome{Outcome: pubsub.OutcomeLoaded})
		return h.respond(c, pages.ProfileDetails(profile.Build(rec, h.policy)))

	case err == nil:
		logger.Info("profile backend returned no record")
		view.SetFlashError(c, domain.MsgProfileNotFound)
		h.publish(c, pubsub.ViewOutcome{Outcome: pubsub.OutcomeEmpty, Message: domain.MsgProfileNotFound})
		return h.respond(c, pages.EmptyState())

	case ctx.Err() != nil:
		// The view went away while the fetch was in flight.
		logger.Debug("profile fetch cancelled", "error", err)
		return nil

	case errors.Is(err, domain.ErrUnauthorized):
		logger.Info("session credential rejected, redirecting to login")
		view.SetFlashError(c, domain.MsgSessionExpired)
		h.publish(c, pubsub.ViewOutcome{
			Outcome: pubsub.OutcomeSessionExpired,
			Status:  http.StatusUnauthorized,
			Message: domain.MsgSessionExpired,
		})
		return view.Redirect(c, h.loginURL)

	default:
		msg := domain.NotificationMessage(err)
		logger.Warn("profile fetch failed", "error", err)
		view.SetFlashError(c, msg)

		outcome := pubsub.ViewOutcome{Outcome: pubsub.OutcomeFailed, Message: msg}
		var be *domain.BackendError
		if errors.As(err, &be) {
			outcome.Status = be.Status
		}
		h.publish(c, outcome)
		return h.respond(c, pages.EmptyState())
	}
}

// respond renders content as an htmx fragment with out-of-band notifications,
// or as a full page for plain requests.
func (h *Handler) respond(c echo.Context, content cmp.Node) error {
	flashes := view.GetFlashData(c)
	if view.IsHTMX(c) {
		return h.renderer.RenderPage(c, http.StatusOK, cmp.Group{content, partials.Notifications(flashes, true)})
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base(pageTitle, flashes, content))
}

func (h *Handler) publish(c echo.Context, outcome pubsub.ViewOutcome) {
	if h.publisher == nil {
		return
	}
	outcome.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	outcome.At = time.Now().UTC()

	ctx := c.Request().Context()
	err := pubsub.Publish(ctx, h.publisher, pubsub.ProfileViewOutcome, outcome, map[string]string{"request_id": outcome.RequestID})
	if err != nil {
		middleware.FromContext(ctx).Error("failed to publish view outcome", "error", err)
	}
}
