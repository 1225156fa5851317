package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hotelaria/hotel-gateway/internal/core/domain"
)

const auditCollection = "auth_audit"

const writeTimeout = 2 * time.Second

// AuditRepository persists authentication events. Writes carry their own
// short timeout so a slow Mongo never delays an auth response.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Record(ctx context.Context, event domain.AuthEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(writeCtx, event); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
