package payment

import (
	"context"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/xendit"
)

type PaymentService interface {
	// CreateOrder opens a Xendit invoice for the configured fee and records
	// a pending order keyed by a fresh external ID.
	CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (OrderResponse, error)
	// HandleInvoiceWebhook processes a Xendit invoice callback. The caller
	// must pass the x-callback-token header value for verification. A paid
	// plan order extends the company's plan expiry.
	HandleInvoiceWebhook(ctx context.Context, callbackToken string, payload xendit.InvoiceWebhookPayload) error
	GetOrder(ctx context.Context, userID, externalID string) (OrderResponse, error)
	// GetCredit reports whether the user holds a paid, not yet redeemed
	// order for the purpose, so employers can see their posting credit
	// before submitting a job.
	GetCredit(ctx context.Context, userID string, purpose Purpose) (CreditResponse, error)
}
