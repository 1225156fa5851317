package service

import (
	"github.com/hotelaria/hotel-gateway/internal/core/domain"
	"github.com/hotelaria/hotel-gateway/internal/core/ports"
)

// GuardAction is the outcome of one access decision.
type GuardAction int

const (
	GuardAllow GuardAction = iota
	GuardRedirect
)

// GuardDecision is what the edge middleware executes: either let the
// request through, or redirect to Target, optionally deleting the session
// cookies on the redirect response.
type GuardDecision struct {
	Action       GuardAction
	Target       string
	ClearSession bool
}

func allow() GuardDecision {
	return GuardDecision{Action: GuardAllow}
}

func redirect(target string) GuardDecision {
	return GuardDecision{Action: GuardRedirect, Target: target}
}

func redirectAndClear(target string) GuardDecision {
	return GuardDecision{Action: GuardRedirect, Target: target, ClearSession: true}
}

// GuardService decides, per request, whether to allow, redirect to login,
// or redirect to a segment home. It holds no per-request state: every
// decision is a pure function of path and cookie values.
type GuardService struct {
	tokens ports.TokenVerifier
}

func NewGuardService(tokens ports.TokenVerifier) *GuardService {
	return &GuardService{tokens: tokens}
}

// Decide evaluates the access policy. The step order is a correctness
// requirement: pass-through short-circuits everything, token validity is
// settled before any segment check, and an invalid session is torn down at
// exactly one point.
func (g *GuardService) Decide(path, rawToken, rawUser string) GuardDecision {
	class := domain.ClassifyRoute(path)

	// 1. Infra and API paths are never intercepted.
	if class == domain.RoutePassthrough {
		return allow()
	}

	// 2. Token validity gates everything below.
	_, err := g.tokens.Verify(rawToken)
	valid := err == nil

	summary, sumErr := domain.ParseUserSummary(rawUser)

	// 3. Root is a pure dispatcher.
	if class == domain.RouteRoot {
		if !valid {
			return redirect(domain.PathLogin)
		}
		if sumErr != nil {
			// Valid token but no trustworthy identity: fail closed.
			return redirect(domain.PathLogin)
		}
		return redirect(summary.HomePath())
	}

	// 4. Authenticated users never see the public surfaces.
	if class == domain.RoutePublic {
		if valid {
			if sumErr != nil {
				// Arbitrary but deliberate: without a parseable summary
				// we send valid sessions to the staff surface.
				return redirect(domain.PathStaffHome)
			}
			return redirect(summary.HomePath())
		}
		return allow()
	}

	// 5. The single teardown point for expired/forged/absent sessions.
	if !valid {
		return redirectAndClear(domain.PathLogin)
	}

	// 6–7. Cross-segment access is silently bounced home.
	if sumErr == nil {
		if class == domain.RouteStaff && !summary.IsStaff() {
			return redirect(domain.PathGuestHome)
		}
		if class == domain.RouteGuest && !summary.IsGuest() {
			return redirect(domain.PathStaffHome)
		}
	}

	// 8. Valid token, corrupt identity cookie: fail closed.
	if sumErr != nil {
		return redirectAndClear(domain.PathLogin)
	}

	// 9. Everything checked out.
	return allow()
}
