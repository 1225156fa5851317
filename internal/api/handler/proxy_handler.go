package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelaria/hotel-gateway/internal/api/metrics"
	"github.com/hotelaria/hotel-gateway/internal/api/session"
	"github.com/hotelaria/hotel-gateway/internal/core/domain"
	"github.com/hotelaria/hotel-gateway/internal/core/ports"
)

// ProxyHandler is the catch-all endpoint that lets browser code issue
// authenticated backend calls. The browser cannot read the HttpOnly token
// cookie, so it sends a logical backend path here; the handler attaches
// the bearer token server-side and relays the backend's answer verbatim.
//
// Contract: GET|POST|PUT|PATCH|DELETE /api/proxy?path=<logical>&<query...>
type ProxyHandler struct {
	upstream ports.Upstream
	sessions *session.Manager
	log      zerolog.Logger
}

func NewProxyHandler(up ports.Upstream, sessions *session.Manager, log zerolog.Logger) *ProxyHandler {
	return &ProxyHandler{upstream: up, sessions: sessions, log: log}
}

// bodyMethods are the verbs that conventionally carry a JSON body.
var bodyMethods = map[string]bool{
	http.MethodPost:  true,
	http.MethodPut:   true,
	http.MethodPatch: true,
}

// Forward handles one proxied request. The proxy does not enforce
// authentication itself: an absent token goes upstream as an empty bearer
// and the backend stays the single source of truth for authorization.
func (h *ProxyHandler) Forward(c echo.Context) error {
	start := time.Now()
	method := c.Request().Method

	path := c.QueryParam("path")
	if path == "" || !strings.HasPrefix(path, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "parámetro path inválido"})
	}

	// Every query parameter except "path" is forwarded as-is.
	forwarded := url.Values{}
	for key, vals := range c.QueryParams() {
		if key == "path" {
			continue
		}
		for _, v := range vals {
			forwarded.Add(key, v)
		}
	}

	var body []byte
	if bodyMethods[method] {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "cuerpo de la petición ilegible"})
		}
		body = raw
	}

	bearer := h.sessions.ReadToken(c)

	resp, err := h.upstream.Forward(c.Request().Context(), method, path, forwarded.Encode(), bearer, body)
	if err != nil {
		metrics.ProxyUpstreamErrorsTotal.Inc()
		evt := h.log.Error()
		if errors.Is(err, domain.ErrUpstreamUnreachable) {
			evt = h.log.Warn()
		}
		evt.Err(err).Str("method", method).Str("path", path).Msg("proxy forward failed")
		return c.JSON(http.StatusBadGateway, echo.Map{"detail": "no se pudo conectar con el servicio"})
	}

	metrics.ProxyRequestsTotal.WithLabelValues(method, statusClass(resp.Status)).Inc()
	metrics.ProxyForwardDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	return c.JSONBlob(resp.Status, resp.Body)
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
