package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelaria/hotel-gateway/internal/api/metrics"
	"github.com/hotelaria/hotel-gateway/internal/api/session"
	"github.com/hotelaria/hotel-gateway/internal/core/domain"
	"github.com/hotelaria/hotel-gateway/internal/core/service"
)

// Guard runs the access policy before every handler. It never returns an
// error: every outcome is either pass-through or a 302 redirect, with the
// session cookies deleted on the redirect when the policy says so.
func Guard(guard *service.GuardService, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			decision := guard.Decide(path, sessions.ReadToken(c), sessions.RawUser(c))

			class := domain.ClassifyRoute(path)
			outcome := "allow"
			if decision.Action == service.GuardRedirect {
				outcome = "redirect"
			}
			metrics.GuardDecisionsTotal.WithLabelValues(outcome, class.String()).Inc()

			if decision.ClearSession {
				sessions.Clear(c)
				metrics.SessionsClearedTotal.Inc()
			}
			if decision.Action == service.GuardRedirect {
				return c.Redirect(http.StatusFound, decision.Target)
			}
			return next(c)
		}
	}
}
