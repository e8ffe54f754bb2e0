package xendit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// WebhookVerifier handles webhook verification
type WebhookVerifier struct {
	webhookToken string
}

// NewWebhookVerifier creates a new webhook verifier
func NewWebhookVerifier(webhookToken string) *WebhookVerifier {
	return &WebhookVerifier{
		webhookToken: webhookToken,
	}
}

// VerifySignature verifies the webhook callback token from Xendit.
// Xendit sends the token in the x-callback-token header.
func (v *WebhookVerifier) VerifySignature(callbackToken string) bool {
	return strings.TrimSpace(callbackToken) == strings.TrimSpace(v.webhookToken)
}

// VerifyHMACSignature verifies HMAC-SHA256 signature (alternative method)
func (v *WebhookVerifier) VerifyHMACSignature(payload []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(v.webhookToken))
	mac.Write(payload)
	expectedMAC := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expectedMAC), []byte(signature))
}

// InvoiceWebhookPayload represents the webhook payload for invoice events
type InvoiceWebhookPayload struct {
	ID             string  `json:"id"`
	ExternalID     string  `json:"external_id"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PaidAt         string  `json:"paid_at"`
	PayerEmail     string  `json:"payer_email"`
	Description    string  `json:"description"`
	Currency       string  `json:"currency"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentChannel string  `json:"payment_channel"`
}
