package ports

import "github.com/hotelaria/hotel-gateway/internal/core/domain"

// TokenVerifier checks a bearer token's signature and freshness. It never
// mints tokens; that is the upstream auth service's job.
type TokenVerifier interface {
	// Verify returns the token's identity claims, or domain.ErrTokenInvalid
	// for any failure (signature, structure, expiry).
	Verify(token string) (*domain.TokenClaims, error)
}
