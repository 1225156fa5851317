package domain

import "time"

// TokenClaims is the decoded identity carried inside a verified bearer
// token. Field presence mirrors UserSummary: staff tokens carry
// IDPersonal/IDRol/NombreRol, guest tokens carry IDHuesped.
type TokenClaims struct {
	Tipo       Segment
	IDPersonal int
	IDRol      int
	NombreRol  string
	IDHuesped  int
	ExpiresAt  time.Time
}
