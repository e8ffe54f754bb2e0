package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/validator"
)

type CreateOrderRequest struct {
	Purpose string `json:"purpose"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Purpose, []string{string(PurposePlan), string(PurposeJobPost)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "purpose",
			Message: "purpose must be plan or job_post",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreditResponse tells an employer whether an unredeemed paid order is
// waiting for the given purpose.
type CreditResponse struct {
	Purpose   Purpose `json:"purpose"`
	Available bool    `json:"available"`
}

type OrderResponse struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Purpose    Purpose         `json:"purpose"`
	Amount     decimal.Decimal `json:"amount"`
	Status     Status          `json:"status"`
	InvoiceURL *string         `json:"invoice_url,omitempty"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func ToResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		ExternalID: o.ExternalID,
		Purpose:    o.Purpose,
		Amount:     o.Amount,
		Status:     o.Status,
		InvoiceURL: o.InvoiceURL,
		PaidAt:     o.PaidAt,
		CreatedAt:  o.CreatedAt,
	}
}
