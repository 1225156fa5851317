package service

import (
	"testing"

	"github.com/hotelaria/hotel-gateway/internal/core/domain"
)

// stubVerifier accepts exactly one token value.
type stubVerifier struct {
	valid  string
	claims *domain.TokenClaims
}

func (s *stubVerifier) Verify(token string) (*domain.TokenClaims, error) {
	if token != "" && token == s.valid {
		return s.claims, nil
	}
	return nil, domain.ErrTokenInvalid
}

const (
	staffUser = `{"tipo":"personal","id_personal":7,"id_rol":2,"nombre_rol":"Recepcionista"}`
	guestUser = `{"tipo":"huesped","id_huesped":42}`
)

func newGuard() *GuardService {
	return NewGuardService(&stubVerifier{
		valid:  "good-token",
		claims: &domain.TokenClaims{Tipo: domain.SegmentStaff},
	})
}

func TestGuard_PassthroughSkipsEverything(t *testing.T) {
	g := newGuard()
	for _, path := range []string{"/api/proxy", "/api/auth/login", "/static/css/app.css", "/metrics", "/health"} {
		d := g.Decide(path, "garbage", "garbage")
		if d.Action != GuardAllow {
			t.Errorf("%s: expected allow, got %+v", path, d)
		}
		if d.ClearSession {
			t.Errorf("%s: passthrough must never touch the session", path)
		}
	}
}

func TestGuard_RootDispatch(t *testing.T) {
	g := newGuard()

	if d := g.Decide("/", "", ""); d.Action != GuardRedirect || d.Target != domain.PathLogin {
		t.Fatalf("anonymous root: %+v", d)
	}
	if d := g.Decide("/", "good-token", staffUser); d.Target != domain.PathStaffHome {
		t.Fatalf("staff root: %+v", d)
	}
	if d := g.Decide("/", "good-token", guestUser); d.Target != domain.PathGuestHome {
		t.Fatalf("guest root: %+v", d)
	}
	// Valid token, unreadable identity: fail closed to login.
	if d := g.Decide("/", "good-token", "{broken"); d.Target != domain.PathLogin {
		t.Fatalf("corrupt identity at root: %+v", d)
	}
}

func TestGuard_PublicRoutes(t *testing.T) {
	g := newGuard()

	if d := g.Decide("/login", "", ""); d.Action != GuardAllow {
		t.Fatalf("anonymous login page: %+v", d)
	}
	if d := g.Decide("/registro", "garbage", ""); d.Action != GuardAllow {
		t.Fatalf("invalid-token registro page: %+v", d)
	}
	// Authenticated users never see the login page.
	if d := g.Decide("/login", "good-token", staffUser); d.Target != domain.PathStaffHome {
		t.Fatalf("staff on login page: %+v", d)
	}
	if d := g.Decide("/login", "good-token", guestUser); d.Target != domain.PathGuestHome {
		t.Fatalf("guest on login page: %+v", d)
	}
	// Valid token without a parseable summary falls back to the staff home.
	if d := g.Decide("/login", "good-token", "{broken"); d.Target != domain.PathStaffHome {
		t.Fatalf("corrupt identity on login page: %+v", d)
	}
}

func TestGuard_InvalidTokenClearsSession(t *testing.T) {
	g := newGuard()

	for _, path := range []string{"/dashboard", "/portal", "/dashboard/pagos", "/ajustes"} {
		d := g.Decide(path, "expired-or-forged", staffUser)
		if d.Action != GuardRedirect || d.Target != domain.PathLogin {
			t.Errorf("%s: expected redirect to login, got %+v", path, d)
		}
		if !d.ClearSession {
			t.Errorf("%s: invalid session must be torn down", path)
		}
	}
}

func TestGuard_SegmentIsolation(t *testing.T) {
	g := newGuard()

	// Staff on every guest path is bounced to the staff home, never allowed.
	for _, path := range []string{"/portal", "/portal/reservas", "/portal/encuestas"} {
		d := g.Decide(path, "good-token", staffUser)
		if d.Action != GuardRedirect || d.Target != domain.PathStaffHome {
			t.Errorf("staff on %s: %+v", path, d)
		}
		if d.ClearSession {
			t.Errorf("staff on %s: cross-segment must not clear the session", path)
		}
	}

	// And symmetrically for guests on staff paths.
	for _, path := range []string{"/dashboard", "/dashboard/personal"} {
		d := g.Decide(path, "good-token", guestUser)
		if d.Action != GuardRedirect || d.Target != domain.PathGuestHome {
			t.Errorf("guest on %s: %+v", path, d)
		}
	}
}

func TestGuard_CorruptIdentityFailsClosed(t *testing.T) {
	g := newGuard()

	for _, raw := range []string{"", "not json", `{"tipo":"other"}`} {
		d := g.Decide("/dashboard", "good-token", raw)
		if d.Action != GuardRedirect || d.Target != domain.PathLogin {
			t.Errorf("auth_user=%q: expected redirect to login, got %+v", raw, d)
		}
		if !d.ClearSession {
			t.Errorf("auth_user=%q: corrupt identity must clear the session", raw)
		}
	}
}

func TestGuard_MatchingSegmentAllowed(t *testing.T) {
	g := newGuard()

	if d := g.Decide("/dashboard", "good-token", staffUser); d.Action != GuardAllow {
		t.Fatalf("staff on dashboard: %+v", d)
	}
	if d := g.Decide("/portal/perfil", "good-token", guestUser); d.Action != GuardAllow {
		t.Fatalf("guest on portal: %+v", d)
	}
	// Paths without a segment restriction only need a valid session.
	if d := g.Decide("/ajustes", "good-token", guestUser); d.Action != GuardAllow {
		t.Fatalf("guest on unrestricted path: %+v", d)
	}
}
