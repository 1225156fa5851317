package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotelaria/hotel-gateway/internal/api/session"
	"github.com/hotelaria/hotel-gateway/internal/infrastructure/upstream"
)

// capturedRequest records what the fake backend saw.
type capturedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

func newProxyServer(t *testing.T, backend http.HandlerFunc) (*echo.Echo, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	e := echo.New()
	sessions := session.NewManager(false)
	h := NewProxyHandler(upstream.NewClient(ts.URL, 0), sessions, zerolog.Nop())
	e.Any("/api/proxy", h.Forward)
	return e, ts
}

func TestProxy_RelaysStatusAndBodyVerbatim(t *testing.T) {
	e, _ := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"not found"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?path=%2Fhabitaciones%2F99", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"detail":"not found"}` {
		t.Fatalf("body = %q", body)
	}
}

func TestProxy_AttachesBearerAndForwardsQuery(t *testing.T) {
	var got capturedRequest
	e, _ := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
		}
		_, _ = w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?path=%2Fhabitaciones&estado=1", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "the-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.path != "/habitaciones" {
		t.Fatalf("backend path = %q", got.path)
	}
	if got.query != "estado=1" {
		t.Fatalf("backend query = %q", got.query)
	}
	if got.auth != "Bearer the-token" {
		t.Fatalf("authorization = %q", got.auth)
	}
}

func TestProxy_AbsentTokenForwardsEmptyBearer(t *testing.T) {
	var auth string
	e, _ := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"no autenticado"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?path=%2Freservaciones", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Rejecting the empty bearer is the backend's job, relayed unchanged.
	if auth != "Bearer " {
		t.Fatalf("authorization = %q", auth)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected relayed 401, got %d", rec.Code)
	}
}

func TestProxy_ForwardsJSONBodyForPost(t *testing.T) {
	var got capturedRequest
	e, _ := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = capturedRequest{body: string(raw), method: r.Method}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	})

	payload := `{"id_habitacion":3,"noches":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/proxy?path=%2Freservaciones", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.body != payload {
		t.Fatalf("backend body = %q", got.body)
	}
}

func TestProxy_NonJSONBodyBecomesEmptyObject(t *testing.T) {
	e, _ := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>gateway timeout page</html>"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?path=%2Fpagos", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "{}" {
		t.Fatalf("body = %q, want {}", body)
	}
}

func TestProxy_UnreachableBackendIs502(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // nothing listens here anymore

	e := echo.New()
	h := NewProxyHandler(upstream.NewClient(ts.URL, 0), session.NewManager(false), zerolog.Nop())
	e.Any("/api/proxy", h.Forward)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy?path=%2Fhabitaciones", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("502 body not JSON: %v", err)
	}
	if body["detail"] == "" {
		t.Fatalf("502 body missing detail: %v", body)
	}
}

func TestProxy_RejectsMissingOrRelativePath(t *testing.T) {
	e, _ := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called")
	})

	for _, target := range []string{"/api/proxy", "/api/proxy?path=habitaciones"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}
