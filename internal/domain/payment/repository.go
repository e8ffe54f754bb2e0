package payment

import (
	"context"
	"time"
)

type OrderRepository interface {
	Create(ctx context.Context, newOrder Order) (Order, error)
	GetByExternalID(ctx context.Context, externalID string) (Order, error)
	MarkPaid(ctx context.Context, externalID string, paidAt time.Time) error
	// ConsumePaidOrder atomically flips the newest paid order for the user
	// and purpose back to expired, returning false when none exists. Used
	// to redeem a one-shot job posting fee.
	ConsumePaidOrder(ctx context.Context, userID string, purpose Purpose) (bool, error)
	HasPaidOrder(ctx context.Context, userID string, purpose Purpose) (bool, error)
	ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error)
}
