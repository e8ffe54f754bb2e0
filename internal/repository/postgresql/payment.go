package postgresql

import (
	"context"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
)

type paymentOrderRepositoryImpl struct {
	db *database.DB
}

func NewPaymentOrderRepository(db *database.DB) payment.OrderRepository {
	return &paymentOrderRepositoryImpl{db: db}
}

const orderColumns = `id, external_id, user_id, purpose, amount, status, invoice_id,
	   invoice_url, paid_at, created_at, updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (payment.Order, error) {
	var o payment.Order
	err := row.Scan(
		&o.ID,
		&o.ExternalID,
		&o.UserID,
		&o.Purpose,
		&o.Amount,
		&o.Status,
		&o.InvoiceID,
		&o.InvoiceURL,
		&o.PaidAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// Create implements payment.OrderRepository.
func (r *paymentOrderRepositoryImpl) Create(ctx context.Context, newOrder payment.Order) (payment.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_orders (external_id, user_id, purpose, amount, status, invoice_id, invoice_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + orderColumns

	return scanOrder(q.QueryRow(ctx, query,
		newOrder.ExternalID,
		newOrder.UserID,
		newOrder.Purpose,
		newOrder.Amount,
		newOrder.Status,
		newOrder.InvoiceID,
		newOrder.InvoiceURL,
	))
}

// GetByExternalID implements payment.OrderRepository.
func (r *paymentOrderRepositoryImpl) GetByExternalID(ctx context.Context, externalID string) (payment.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orderColumns + ` FROM payment_orders WHERE external_id = $1`
	return scanOrder(q.QueryRow(ctx, query, externalID))
}

// MarkPaid implements payment.OrderRepository. Webhook retries are
// harmless: a paid order stays paid.
func (r *paymentOrderRepositoryImpl) MarkPaid(ctx context.Context, externalID string, paidAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_orders
		SET status = 'paid', paid_at = $1, updated_at = NOW()
		WHERE external_id = $2 AND status = 'pending'
	`
	_, err := q.Exec(ctx, query, paidAt, externalID)
	return err
}

// ConsumePaidOrder implements payment.OrderRepository. The UPDATE claims
// exactly one paid order even under concurrent job submissions.
func (r *paymentOrderRepositoryImpl) ConsumePaidOrder(ctx context.Context, userID string, purpose payment.Purpose) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_orders
		SET status = 'consumed', updated_at = NOW()
		WHERE id = (
			SELECT id FROM payment_orders
			WHERE user_id = $1 AND purpose = $2 AND status = 'paid'
			ORDER BY paid_at DESC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
	`
	tag, err := q.Exec(ctx, query, userID, purpose)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// HasPaidOrder implements payment.OrderRepository.
func (r *paymentOrderRepositoryImpl) HasPaidOrder(ctx context.Context, userID string, purpose payment.Purpose) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payment_orders WHERE user_id = $1 AND purpose = $2 AND status = 'paid')`,
		userID, purpose,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ExpireStale implements payment.OrderRepository. Invoked from the
// scheduler to close abandoned invoices.
func (r *paymentOrderRepositoryImpl) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_orders
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND created_at < $1
	`
	tag, err := q.Exec(ctx, query, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
