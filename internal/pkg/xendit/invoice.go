package xendit

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xendit/xendit-go/v7/invoice"
)

// CreateInvoiceRequest represents the request to create an invoice
type CreateInvoiceRequest struct {
	ExternalID         string            `json:"external_id"`
	Amount             decimal.Decimal   `json:"amount"`
	Description        string            `json:"description"`
	PayerEmail         string            `json:"payer_email"`
	Currency           string            `json:"currency,omitempty"`         // Default: INR
	InvoiceDuration    int               `json:"invoice_duration,omitempty"` // In seconds
	SuccessRedirectURL string            `json:"success_redirect_url,omitempty"`
	FailureRedirectURL string            `json:"failure_redirect_url,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
}

// InvoiceResponse represents the response from creating/getting an invoice
type InvoiceResponse struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Status     string    `json:"status"` // PENDING, PAID, SETTLED, EXPIRED
	Amount     float64   `json:"amount"`
	PayerEmail string    `json:"payer_email"`
	InvoiceURL string    `json:"invoice_url"`
	ExpiryDate time.Time `json:"expiry_date"`
	Currency   string    `json:"currency"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`
}

// InvoiceStatus constants
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusSettled = "SETTLED"
	InvoiceStatusExpired = "EXPIRED"
)

// CreateInvoice creates a new invoice using the official Xendit SDK
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	// Convert decimal to float64 for SDK
	amount, _ := req.Amount.Float64()

	sdkReq := *invoice.NewCreateInvoiceRequest(req.ExternalID, amount)

	if req.PayerEmail != "" {
		sdkReq.SetPayerEmail(req.PayerEmail)
	}
	if req.Description != "" {
		sdkReq.SetDescription(req.Description)
	}
	if req.InvoiceDuration > 0 {
		sdkReq.SetInvoiceDuration(float32(req.InvoiceDuration))
	}
	if req.SuccessRedirectURL != "" {
		sdkReq.SetSuccessRedirectUrl(req.SuccessRedirectURL)
	}
	if req.FailureRedirectURL != "" {
		sdkReq.SetFailureRedirectUrl(req.FailureRedirectURL)
	}
	sdkReq.SetCurrency(currency)

	if len(req.Metadata) > 0 {
		metadata := make(map[string]interface{})
		for k, v := range req.Metadata {
			metadata[k] = v
		}
		sdkReq.SetMetadata(metadata)
	}

	resp, _, err := c.invoiceAPI.CreateInvoice(ctx).
		CreateInvoiceRequest(sdkReq).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return toInvoiceResponse(resp), nil
}

// GetInvoice retrieves an invoice by ID
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*InvoiceResponse, error) {
	resp, _, err := c.invoiceAPI.GetInvoiceById(ctx, invoiceID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return toInvoiceResponse(resp), nil
}

// ExpireInvoice expires an invoice so it can no longer be paid
func (c *Client) ExpireInvoice(ctx context.Context, invoiceID string) (*InvoiceResponse, error) {
	resp, _, err := c.invoiceAPI.ExpireInvoice(ctx, invoiceID).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to expire invoice: %w", err)
	}

	return toInvoiceResponse(resp), nil
}

func toInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}

	resp := &InvoiceResponse{
		ID:         inv.GetId(),
		ExternalID: inv.GetExternalId(),
		Status:     string(inv.GetStatus()),
		Amount:     inv.GetAmount(),
		InvoiceURL: inv.GetInvoiceUrl(),
		ExpiryDate: inv.GetExpiryDate(),
		Currency:   string(inv.GetCurrency()),
		Created:    inv.GetCreated(),
		Updated:    inv.GetUpdated(),
	}

	if inv.HasPayerEmail() {
		resp.PayerEmail = inv.GetPayerEmail()
	}

	return resp
}
