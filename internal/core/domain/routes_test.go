package domain

import "testing"

func TestClassifyRoute(t *testing.T) {
	cases := []struct {
		path string
		want RouteClass
	}{
		{"/", RouteRoot},
		{"/login", RoutePublic},
		{"/registro", RoutePublic},
		{"/dashboard", RouteStaff},
		{"/dashboard/reservaciones", RouteStaff},
		{"/dashboard/habitaciones", RouteStaff},
		{"/portal", RouteGuest},
		{"/portal/encuestas", RouteGuest},
		{"/api/proxy", RoutePassthrough},
		{"/api/auth/login", RoutePassthrough},
		{"/static/js/api.js", RoutePassthrough},
		{"/metrics", RoutePassthrough},
		{"/health", RoutePassthrough},
		{"/health/ready", RoutePassthrough},
		{"/favicon.ico", RoutePassthrough},
		{"/ajustes", RouteProtected},
		{"/dashboardx", RouteProtected},
		{"/portalx", RouteProtected},
	}

	for _, tc := range cases {
		if got := ClassifyRoute(tc.path); got != tc.want {
			t.Errorf("ClassifyRoute(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
