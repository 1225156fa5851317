package domain

import (
	"encoding/json"
	"errors"
)

// Segment identifies which of the two user populations a session belongs to.
type Segment string

const (
	SegmentStaff Segment = "personal"
	SegmentGuest Segment = "huesped"
)

var ErrBadUserSummary = errors.New("malformed user summary")

// UserSummary is the denormalized identity carried in the client-readable
// auth_user cookie. Exactly one variant is populated, selected by Tipo:
// staff summaries carry IDPersonal/IDRol/NombreRol, guest summaries carry
// IDHuesped. It is trusted for routing and personalization only; the bearer
// token remains the sole credential the backend ever sees.
type UserSummary struct {
	Tipo       Segment `json:"tipo"`
	IDPersonal int     `json:"id_personal,omitempty"`
	IDRol      int     `json:"id_rol,omitempty"`
	NombreRol  string  `json:"nombre_rol,omitempty"`
	IDHuesped  int     `json:"id_huesped,omitempty"`
}

// NewStaffSummary builds the staff variant.
func NewStaffSummary(idPersonal, idRol int, nombreRol string) UserSummary {
	return UserSummary{
		Tipo:       SegmentStaff,
		IDPersonal: idPersonal,
		IDRol:      idRol,
		NombreRol:  nombreRol,
	}
}

// NewGuestSummary builds the guest variant.
func NewGuestSummary(idHuesped int) UserSummary {
	return UserSummary{Tipo: SegmentGuest, IDHuesped: idHuesped}
}

func (u UserSummary) IsStaff() bool { return u.Tipo == SegmentStaff }
func (u UserSummary) IsGuest() bool { return u.Tipo == SegmentGuest }

// HomePath returns the surface a user of this segment lands on.
func (u UserSummary) HomePath() string {
	if u.IsGuest() {
		return PathGuestHome
	}
	return PathStaffHome
}

// Encode serializes the summary for cookie transport.
func (u UserSummary) Encode() (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseUserSummary decodes a raw cookie value. Any syntactic failure, an
// empty value, or an unknown segment tag yields ErrBadUserSummary; callers
// must treat all three identically (the summary is absent).
func ParseUserSummary(raw string) (UserSummary, error) {
	if raw == "" {
		return UserSummary{}, ErrBadUserSummary
	}
	var u UserSummary
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return UserSummary{}, ErrBadUserSummary
	}
	if u.Tipo != SegmentStaff && u.Tipo != SegmentGuest {
		return UserSummary{}, ErrBadUserSummary
	}
	return u, nil
}
