package service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelaria/hotel-gateway/internal/core/domain"
)

// tokenClaims is the wire shape of the upstream-minted JWT payload.
type tokenClaims struct {
	Tipo       string `json:"tipo,omitempty"`
	IDPersonal int    `json:"id_personal,omitempty"`
	IDRol      int    `json:"id_rol,omitempty"`
	NombreRol  string `json:"nombre_rol,omitempty"`
	IDHuesped  int    `json:"id_huesped,omitempty"`
	jwt.RegisteredClaims
}

// TokenService verifies bearer tokens against the shared HS256 secret.
// Stateless and safe for concurrent use.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Verify parses and validates a token. Every failure mode — empty input,
// malformed structure, signature mismatch, wrong algorithm, expiry —
// collapses into domain.ErrTokenInvalid so callers cannot build an oracle
// out of the distinction.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.TokenClaims{
		Tipo:       domain.Segment(claims.Tipo),
		IDPersonal: claims.IDPersonal,
		IDRol:      claims.IDRol,
		NombreRol:  claims.NombreRol,
		IDHuesped:  claims.IDHuesped,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	// Staff tokens predate the tipo claim; absence means staff.
	if out.Tipo == "" {
		out.Tipo = domain.SegmentStaff
	}
	return out, nil
}
