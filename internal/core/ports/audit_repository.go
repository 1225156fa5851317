package ports

import (
	"context"

	"github.com/hotelaria/hotel-gateway/internal/core/domain"
)

// AuditRepository persists authentication events. Writes are best-effort:
// callers log failures and never surface them to the client.
type AuditRepository interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}
