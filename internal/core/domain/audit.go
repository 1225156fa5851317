package domain

import "time"

// AuthAction enumerates the auditable authentication events.
type AuthAction string

const (
	AuditLoginOK     AuthAction = "login_ok"
	AuditLoginFailed AuthAction = "login_failed"
	AuditRegistered  AuthAction = "registered"
	AuditLogout      AuthAction = "logout"
)

// AuthEvent is one entry in the authentication audit trail.
type AuthEvent struct {
	Action    AuthAction `bson:"action"`
	Segment   Segment    `bson:"segment,omitempty"`
	Identity  string     `bson:"identity,omitempty"`
	RemoteIP  string     `bson:"remote_ip,omitempty"`
	Detail    string     `bson:"detail,omitempty"`
	CreatedAt time.Time  `bson:"created_at"`
}
