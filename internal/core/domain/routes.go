package domain

import "strings"

// Well-known surfaces the guard redirects to.
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathRegister  = "/registro"
	PathStaffHome = "/dashboard"
	PathGuestHome = "/portal"
)

// RouteClass partitions every request path into exactly one category.
type RouteClass int

const (
	// RoutePassthrough is never intercepted: API routes (including the
	// upstream proxy), static assets and infra endpoints.
	RoutePassthrough RouteClass = iota
	// RouteRoot is the bare "/" landing redirect.
	RouteRoot
	// RoutePublic is reachable without a session (login, registration).
	RoutePublic
	// RouteStaff requires a staff session.
	RouteStaff
	// RouteGuest requires a guest session.
	RouteGuest
	// RouteProtected requires a session of either segment.
	RouteProtected
)

func (c RouteClass) String() string {
	switch c {
	case RoutePassthrough:
		return "passthrough"
	case RouteRoot:
		return "root"
	case RoutePublic:
		return "public"
	case RouteStaff:
		return "staff"
	case RouteGuest:
		return "guest"
	default:
		return "protected"
	}
}

var passthroughPrefixes = []string{
	"/api/",
	"/static/",
	"/metrics",
	"/health",
	"/favicon.ico",
}

// ClassifyRoute maps a request path to its route class. Pure; no side
// effects. Paths outside every known prefix still require a session but
// carry no segment restriction.
func ClassifyRoute(path string) RouteClass {
	for _, p := range passthroughPrefixes {
		if strings.HasPrefix(path, p) {
			return RoutePassthrough
		}
	}
	switch {
	case path == PathRoot:
		return RouteRoot
	case path == PathLogin || path == PathRegister:
		return RoutePublic
	case path == PathStaffHome || strings.HasPrefix(path, PathStaffHome+"/"):
		return RouteStaff
	case path == PathGuestHome || strings.HasPrefix(path, PathGuestHome+"/"):
		return RouteGuest
	default:
		return RouteProtected
	}
}
