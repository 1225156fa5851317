package ports

import (
	"context"
	"encoding/json"
)

// RelayedResponse is an upstream reply ready to be sent to the browser
// verbatim: status code plus a body already guaranteed to be valid JSON.
type RelayedResponse struct {
	Status int
	Body   json.RawMessage
}

// Upstream is the backend hotel service, reachable only over HTTP. Forward
// returns domain.ErrUpstreamUnreachable (wrapped) when the network call
// itself fails; upstream-originated error statuses are not errors here —
// they come back as a RelayedResponse to be relayed as-is.
type Upstream interface {
	// Forward issues method+path?query against the backend with the given
	// bearer token and optional JSON body.
	Forward(ctx context.Context, method, path, rawQuery, bearer string, body []byte) (*RelayedResponse, error)

	// Authenticate posts credentials to one of the backend auth endpoints
	// (e.g. /auth/login, /auth/login/huesped, /auth/registro).
	Authenticate(ctx context.Context, endpoint string, payload any) (*RelayedResponse, error)
}
