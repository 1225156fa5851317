package domain

import "errors"

var (
	// ErrTokenInvalid covers every verification failure: bad signature,
	// malformed structure and expiry. Consumers must not distinguish them.
	ErrTokenInvalid = errors.New("token invalid")

	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRateLimited         = errors.New("too many login attempts")
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
)
