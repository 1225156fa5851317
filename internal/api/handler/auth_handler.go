package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelaria/hotel-gateway/internal/api/metrics"
	"github.com/hotelaria/hotel-gateway/internal/api/session"
	"github.com/hotelaria/hotel-gateway/internal/core/domain"
	"github.com/hotelaria/hotel-gateway/internal/core/ports"
	"github.com/hotelaria/hotel-gateway/internal/infrastructure/upstream"
)

// AuthHandler terminates the login/registration/logout flows: it calls the
// upstream auth endpoints, interprets their token response and establishes
// or destroys the cookie pair. The gateway never mints or stores
// credentials itself.
type AuthHandler struct {
	upstream ports.Upstream
	sessions *session.Manager
	limiter  ports.LoginLimiter
	audit    ports.AuditRepository
	log      zerolog.Logger
}

func NewAuthHandler(up ports.Upstream, sessions *session.Manager, limiter ports.LoginLimiter, audit ports.AuditRepository, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{upstream: up, sessions: sessions, limiter: limiter, audit: audit, log: log}
}

// Login authenticates a staff member against the backend.
//
// @Summary      Staff login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req staffLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.login(c, "/auth/login", domain.SegmentStaff, req.Correo, req)
}

// GuestLogin authenticates a guest against the backend.
//
// @Summary      Guest login
// @Tags         auth
// @Router       /api/auth/login/huesped [post]
func (h *AuthHandler) GuestLogin(c echo.Context) error {
	var req guestLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.login(c, "/auth/login/huesped", domain.SegmentGuest, req.Correo, req)
}

// login is the shared credential flow: throttle, forward, interpret the
// token response, establish the session.
func (h *AuthHandler) login(c echo.Context, endpoint string, segment domain.Segment, correo string, payload any) error {
	ctx := c.Request().Context()
	identity := correo + "|" + c.RealIP()

	throttled, err := h.limiter.TooManyAttempts(ctx, identity)
	if err != nil {
		// Fail open: an unavailable limiter must not lock users out.
		h.log.Warn().Err(err).Msg("login limiter unavailable")
	}
	if throttled {
		metrics.LoginAttemptsTotal.WithLabelValues(string(segment), "throttled").Inc()
		return domain.ErrRateLimited
	}

	resp, err := h.upstream.Authenticate(ctx, endpoint, payload)
	if err != nil {
		return err
	}

	if resp.Status != http.StatusOK {
		metrics.LoginAttemptsTotal.WithLabelValues(string(segment), "failed").Inc()
		if err := h.limiter.RecordFailure(ctx, identity); err != nil {
			h.log.Warn().Err(err).Msg("login limiter record failed")
		}
		h.recordAudit(ctx, c, domain.AuditLoginFailed, segment, correo, "")

		msg := upstream.FlattenDetail(resp.Body, "credenciales incorrectas")
		return echo.NewHTTPError(resp.Status, msg)
	}

	var auth upstreamAuthResponse
	if err := json.Unmarshal(resp.Body, &auth); err != nil || auth.AccessToken == "" {
		h.log.Error().Err(err).Msg("upstream auth response unusable")
		return echo.NewHTTPError(http.StatusBadGateway, "respuesta de autenticación inválida")
	}

	summary := summaryFromAuth(segment, auth)
	if err := h.sessions.Establish(c, auth.AccessToken, summary); err != nil {
		return err
	}

	if err := h.limiter.Clear(ctx, identity); err != nil {
		h.log.Warn().Err(err).Msg("login limiter clear failed")
	}
	metrics.LoginAttemptsTotal.WithLabelValues(string(segment), "ok").Inc()
	h.recordAudit(ctx, c, domain.AuditLoginOK, segment, correo, "")

	return c.JSON(http.StatusOK, echo.Map{
		"usuario": summary,
		"nombre":  auth.Nombre,
	})
}

// Register creates a guest account upstream and logs the new guest in.
//
// @Summary      Guest registration
// @Tags         auth
// @Router       /api/auth/registro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req guestRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	resp, err := h.upstream.Authenticate(ctx, "/auth/registro", req)
	if err != nil {
		return err
	}

	if resp.Status != http.StatusOK && resp.Status != http.StatusCreated {
		msg := upstream.FlattenDetail(resp.Body, "no se pudo completar el registro")
		return echo.NewHTTPError(resp.Status, msg)
	}

	var auth upstreamAuthResponse
	if err := json.Unmarshal(resp.Body, &auth); err != nil || auth.AccessToken == "" {
		h.log.Error().Err(err).Msg("upstream registration response unusable")
		return echo.NewHTTPError(http.StatusBadGateway, "respuesta de registro inválida")
	}

	summary := summaryFromAuth(domain.SegmentGuest, auth)
	if err := h.sessions.Establish(c, auth.AccessToken, summary); err != nil {
		return err
	}
	h.recordAudit(ctx, c, domain.AuditRegistered, domain.SegmentGuest, req.Correo, "")

	return c.JSON(http.StatusCreated, echo.Map{
		"usuario": summary,
		"nombre":  auth.Nombre,
	})
}

// Logout destroys the session. Idempotent: logging out twice is a no-op.
//
// @Summary      Logout
// @Tags         auth
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	segment := domain.Segment("")
	if summary, err := h.sessions.ReadUserSummary(c); err == nil {
		segment = summary.Tipo
	}
	h.sessions.Clear(c)
	h.recordAudit(c.Request().Context(), c, domain.AuditLogout, segment, "", "")
	return c.NoContent(http.StatusNoContent)
}

// summaryFromAuth derives the cookie identity summary from the upstream
// token response. The summary must agree with the claims inside the token
// at establishment time; the upstream response is the shared source of
// both.
func summaryFromAuth(segment domain.Segment, auth upstreamAuthResponse) domain.UserSummary {
	if auth.Tipo == string(domain.SegmentGuest) || (auth.Tipo == "" && segment == domain.SegmentGuest) {
		return domain.NewGuestSummary(auth.IDHuesped)
	}
	return domain.NewStaffSummary(auth.IDPersonal, auth.IDRol, auth.NombreRol)
}

// recordAudit persists an auth event best-effort.
func (h *AuthHandler) recordAudit(ctx context.Context, c echo.Context, action domain.AuthAction, segment domain.Segment, identity, detail string) {
	event := domain.AuthEvent{
		Action:   action,
		Segment:  segment,
		Identity: identity,
		RemoteIP: c.RealIP(),
		Detail:   detail,
	}
	if err := h.audit.Record(ctx, event); err != nil {
		h.log.Warn().Err(err).Str("action", string(action)).Msg("audit write failed")
	}
}
