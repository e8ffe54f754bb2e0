package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purpose of a payment order: an employer subscription plan or a single
// job posting fee.
type Purpose string

const (
	PurposePlan    Purpose = "plan"
	PurposeJobPost Purpose = "job_post"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	// StatusConsumed marks a paid order redeemed by a job posting.
	StatusConsumed Status = "consumed"
	StatusExpired  Status = "expired"
)

// Order tracks one invoice issued through the payment gateway. external_id
// is ours and carried through the webhook; invoice_id is the gateway's.
type Order struct {
	ID         string
	ExternalID string
	UserID     string
	Purpose    Purpose
	Amount     decimal.Decimal
	Status     Status
	InvoiceID  *string
	InvoiceURL *string
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (o *Order) IsPaid() bool {
	return o.Status == StatusPaid
}
