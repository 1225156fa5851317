// Package session defines the on-the-wire representation of a login
// session: a pair of cookies written together and deleted together.
//
//	auth_token — HttpOnly, carries the bearer token. The security boundary:
//	             client script can never read it.
//	auth_user  — readable by client script, carries the JSON-encoded
//	             identity summary for personalization and routing hints.
package session

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotelaria/hotel-gateway/internal/core/domain"
)

const (
	TokenCookie = "auth_token"
	UserCookie  = "auth_user"

	// legacyTokenCookie is the pre-rename cookie some old clients still
	// send. Read as a fallback, deleted on every clear.
	legacyTokenCookie = "token"

	// MaxAge matches the token TTL minted by the upstream auth service.
	MaxAge = 8 * 60 * 60
)

// Manager issues and destroys the cookie pair. Secure should be true in
// production so the pair is only sent over TLS.
type Manager struct {
	Secure bool
}

func NewManager(secure bool) *Manager {
	return &Manager{Secure: secure}
}

// Establish sets both cookies on the response. They share every attribute
// except HttpOnly; both must land in the same response so the client never
// observes a half-established session.
func (m *Manager) Establish(c echo.Context, token string, summary domain.UserSummary) error {
	encoded, err := summary.Encode()
	if err != nil {
		return err
	}
	c.SetCookie(m.cookie(TokenCookie, token, MaxAge, true))
	// JSON carries characters that are illegal in a cookie value; the
	// summary travels URL-encoded and client script decodeURIComponents it.
	c.SetCookie(m.cookie(UserCookie, encodeValue(encoded), MaxAge, false))
	return nil
}

// ReadToken returns the bearer token, or "" when absent. The legacy cookie
// name is honored when the current one is missing.
func (m *Manager) ReadToken(c echo.Context) string {
	if ck, err := c.Cookie(TokenCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	if ck, err := c.Cookie(legacyTokenCookie); err == nil {
		return ck.Value
	}
	return ""
}

// ReadUserSummary returns the decoded identity summary. A missing or
// malformed cookie is reported as domain.ErrBadUserSummary, never a panic
// or a distinct parse error.
func (m *Manager) ReadUserSummary(c echo.Context) (domain.UserSummary, error) {
	ck, err := c.Cookie(UserCookie)
	if err != nil {
		return domain.UserSummary{}, domain.ErrBadUserSummary
	}
	return domain.ParseUserSummary(decodeValue(ck.Value))
}

// RawUser returns the undecoded auth_user value for callers that parse it
// themselves (the guard decision core).
func (m *Manager) RawUser(c echo.Context) string {
	if ck, err := c.Cookie(UserCookie); err == nil {
		return decodeValue(ck.Value)
	}
	return ""
}

// encodeValue URL-encodes a cookie value. "%20" is used for spaces, not
// "+", so browser-side decodeURIComponent round-trips cleanly.
func encodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// decodeValue reverses the URL-encoding applied at write time. A value
// that does not unescape is returned verbatim; the JSON parse downstream
// rejects it anyway.
func decodeValue(v string) string {
	decoded, err := url.QueryUnescape(v)
	if err != nil {
		return v
	}
	return decoded
}

// Clear deletes the pair (and the legacy cookie) unconditionally.
// Idempotent: clearing an already-cleared session re-emits the same
// expired cookies.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(m.cookie(TokenCookie, "", -1, true))
	c.SetCookie(m.cookie(UserCookie, "", -1, false))
	c.SetCookie(m.cookie(legacyTokenCookie, "", -1, true))
}

func (m *Manager) cookie(name, value string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
