package payment

import "errors"

var (
	ErrOrderNotFound       = errors.New("payment order not found")
	ErrInvalidWebhookToken = errors.New("invalid webhook callback token")
	ErrOrderAlreadyPaid    = errors.New("payment order already paid")
)
