package moderation

import (
	"context"
)

type ModerationService interface {
	// Decide persists a moderator decision. In strict mode the requested
	// status must be a legal transition from the entity's current state;
	// in permissive mode any known status for the entity type is written
	// as-is. Concurrent decisions resolve last-write-wins.
	Decide(ctx context.Context, req DecideRequest) error
	ListPending(ctx context.Context, entityType EntityType) (PendingQueue, error)
}
