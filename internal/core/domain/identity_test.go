package domain

import "testing"

func TestParseUserSummary_Staff(t *testing.T) {
	raw := `{"tipo":"personal","id_personal":7,"id_rol":2,"nombre_rol":"Recepcionista"}`
	u, err := ParseUserSummary(raw)
	if err != nil {
		t.Fatalf("ParseUserSummary returned error: %v", err)
	}
	if !u.IsStaff() || u.IsGuest() {
		t.Fatalf("expected staff variant, got %+v", u)
	}
	if u.IDPersonal != 7 || u.IDRol != 2 || u.NombreRol != "Recepcionista" {
		t.Fatalf("unexpected staff fields: %+v", u)
	}
	if u.HomePath() != PathStaffHome {
		t.Fatalf("staff home = %q", u.HomePath())
	}
}

func TestParseUserSummary_Guest(t *testing.T) {
	raw := `{"tipo":"huesped","id_huesped":42}`
	u, err := ParseUserSummary(raw)
	if err != nil {
		t.Fatalf("ParseUserSummary returned error: %v", err)
	}
	if !u.IsGuest() {
		t.Fatalf("expected guest variant, got %+v", u)
	}
	if u.HomePath() != PathGuestHome {
		t.Fatalf("guest home = %q", u.HomePath())
	}
}

func TestParseUserSummary_Malformed(t *testing.T) {
	cases := []string{
		"",
		"not json",
		"{",
		`{"tipo":"other"}`,
		`{"id_personal":1}`,
		`[]`,
	}
	for _, raw := range cases {
		if _, err := ParseUserSummary(raw); err != ErrBadUserSummary {
			t.Errorf("ParseUserSummary(%q) error = %v, want ErrBadUserSummary", raw, err)
		}
	}
}

func TestUserSummary_EncodeRoundTrip(t *testing.T) {
	orig := NewStaffSummary(3, 1, "Gerente")
	raw, err := orig.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := ParseUserSummary(raw)
	if err != nil {
		t.Fatalf("ParseUserSummary: %v", err)
	}
	if back != orig {
		t.Fatalf("round trip mismatch: %+v != %+v", back, orig)
	}
}
