package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/company"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/user"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/database"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/xendit"
)

type PaymentServiceImpl struct {
	db *database.DB
	payment.OrderRepository
	company.CompanyRepository
	user.UserRepository
	xenditClient *xendit.Client
	verifier     *xendit.WebhookVerifier
	billing      config.BillingConfig
}

func NewPaymentService(
	db *database.DB,
	orderRepository payment.OrderRepository,
	companyRepository company.CompanyRepository,
	userRepository user.UserRepository,
	xenditClient *xendit.Client,
	verifier *xendit.WebhookVerifier,
	billing config.BillingConfig,
) payment.PaymentService {
	return &PaymentServiceImpl{
		db:                db,
		OrderRepository:   orderRepository,
		CompanyRepository: companyRepository,
		UserRepository:    userRepository,
		xenditClient:      xenditClient,
		verifier:          verifier,
		billing:           billing,
	}
}

func (s *PaymentServiceImpl) feeFor(purpose payment.Purpose) decimal.Decimal {
	switch purpose {
	case payment.PurposePlan:
		return decimal.NewFromInt(s.billing.PlanFee)
	default:
		return decimal.NewFromInt(s.billing.JobPostFee)
	}
}

// CreateOrder implements payment.PaymentService.
func (s *PaymentServiceImpl) CreateOrder(ctx context.Context, userID string, req payment.CreateOrderRequest) (payment.OrderResponse, error) {
	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.OrderResponse{}, user.ErrUserNotFound
		}
		return payment.OrderResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	purpose := payment.Purpose(req.Purpose)
	amount := s.feeFor(purpose)
	externalID := fmt.Sprintf("kaamsetu-%s-%s", purpose, uuid.New().String())

	invoice, err := s.xenditClient.CreateInvoice(ctx, xendit.CreateInvoiceRequest{
		ExternalID:      externalID,
		Amount:          amount,
		Description:     fmt.Sprintf("KaamSetu %s fee", purpose),
		PayerEmail:      userData.Email,
		Currency:        "INR",
		InvoiceDuration: s.billing.InvoiceExpirySeconds,
		Metadata: map[string]string{
			"user_id": userData.ID,
			"purpose": string(purpose),
		},
	})
	if err != nil {
		return payment.OrderResponse{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	newOrder := payment.Order{
		ExternalID: externalID,
		UserID:     userData.ID,
		Purpose:    purpose,
		Amount:     amount,
		Status:     payment.StatusPending,
		InvoiceID:  &invoice.ID,
		InvoiceURL: &invoice.InvoiceURL,
	}

	created, err := s.OrderRepository.Create(ctx, newOrder)
	if err != nil {
		return payment.OrderResponse{}, fmt.Errorf("failed to create payment order: %w", err)
	}

	return payment.ToResponse(created), nil
}

// HandleInvoiceWebhook implements payment.PaymentService. Retried callbacks
// are safe: a paid order is never paid twice.
func (s *PaymentServiceImpl) HandleInvoiceWebhook(ctx context.Context, callbackToken string, payload xendit.InvoiceWebhookPayload) error {
	if !s.verifier.VerifySignature(callbackToken) {
		return payment.ErrInvalidWebhookToken
	}

	orderData, err := s.OrderRepository.GetByExternalID(ctx, payload.ExternalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.ErrOrderNotFound
		}
		return fmt.Errorf("failed to get payment order: %w", err)
	}

	switch payload.Status {
	case xendit.InvoiceStatusPaid, xendit.InvoiceStatusSettled:
		if orderData.IsPaid() {
			slog.Info("Webhook replay for paid order ignored", "external_id", payload.ExternalID)
			return nil
		}

		paidAt := time.Now().UTC()
		if payload.PaidAt != "" {
			if t, err := time.Parse(time.RFC3339, payload.PaidAt); err == nil {
				paidAt = t
			}
		}

		if err := s.OrderRepository.MarkPaid(ctx, payload.ExternalID, paidAt); err != nil {
			return fmt.Errorf("failed to mark order paid: %w", err)
		}

		if orderData.Purpose == payment.PurposePlan {
			if err := s.extendPlan(ctx, orderData.UserID); err != nil {
				return err
			}
		}

		slog.Info("Payment order settled",
			"external_id", payload.ExternalID,
			"purpose", orderData.Purpose,
			"amount", payload.PaidAmount,
			"channel", payload.PaymentChannel,
		)
		return nil

	case xendit.InvoiceStatusExpired:
		// Stale-order sweep handles persistence; nothing to do here
		slog.Info("Invoice expired", "external_id", payload.ExternalID)
		return nil

	default:
		slog.Warn("Unhandled invoice webhook status", "status", payload.Status, "external_id", payload.ExternalID)
		return nil
	}
}

// extendPlan pushes the company plan expiry forward by the configured
// subscription length, stacking on top of any remaining time.
func (s *PaymentServiceImpl) extendPlan(ctx context.Context, recruiterID string) error {
	companyData, err := s.CompanyRepository.GetByRecruiterID(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyMissing
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	base := time.Now().UTC()
	if companyData.PlanExpiresAt != nil && companyData.PlanExpiresAt.After(base) {
		base = *companyData.PlanExpiresAt
	}
	expiresAt := base.AddDate(0, 0, s.billing.PlanDays)

	if err := s.CompanyRepository.UpdatePlanExpiry(ctx, companyData.ID, expiresAt); err != nil {
		return fmt.Errorf("failed to extend plan: %w", err)
	}

	return nil
}

// GetCredit implements payment.PaymentService.
func (s *PaymentServiceImpl) GetCredit(ctx context.Context, userID string, purpose payment.Purpose) (payment.CreditResponse, error) {
	available, err := s.OrderRepository.HasPaidOrder(ctx, userID, purpose)
	if err != nil {
		return payment.CreditResponse{}, fmt.Errorf("failed to check paid orders: %w", err)
	}

	return payment.CreditResponse{Purpose: purpose, Available: available}, nil
}

// GetOrder implements payment.PaymentService.
func (s *PaymentServiceImpl) GetOrder(ctx context.Context, userID, externalID string) (payment.OrderResponse, error) {
	orderData, err := s.OrderRepository.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.OrderResponse{}, payment.ErrOrderNotFound
		}
		return payment.OrderResponse{}, fmt.Errorf("failed to get payment order: %w", err)
	}
	if orderData.UserID != userID {
		return payment.OrderResponse{}, payment.ErrOrderNotFound
	}

	return payment.ToResponse(orderData), nil
}
