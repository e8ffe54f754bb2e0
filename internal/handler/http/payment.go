package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/payment"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/middleware"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/pkg/xendit"
)

type PaymentHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	GetCredit(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// CreateOrder implements PaymentHandler.
func (h *PaymentHandlerImpl) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req payment.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateOrder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	order, err := h.paymentService.CreateOrder(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("CreateOrder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created", order)
}

// GetOrder implements PaymentHandler.
func (h *PaymentHandlerImpl) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.paymentService.GetOrder(r.Context(), middleware.UserID(r), chi.URLParam(r, "externalID"))
	if err != nil {
		slog.Error("GetOrder service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, order)
}

// GetCredit implements PaymentHandler. Defaults to the job posting fee
// when no purpose query param is given.
func (h *PaymentHandlerImpl) GetCredit(w http.ResponseWriter, r *http.Request) {
	purpose := payment.Purpose(r.URL.Query().Get("purpose"))
	if purpose == "" {
		purpose = payment.PurposeJobPost
	}
	if purpose != payment.PurposePlan && purpose != payment.PurposeJobPost {
		response.BadRequest(w, "purpose must be plan or job_post", nil)
		return
	}

	credit, err := h.paymentService.GetCredit(r.Context(), middleware.UserID(r), purpose)
	if err != nil {
		slog.Error("GetCredit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, credit)
}

// Webhook implements PaymentHandler. Xendit invoice callbacks arrive here
// authenticated only by the x-callback-token header.
func (h *PaymentHandlerImpl) Webhook(w http.ResponseWriter, r *http.Request) {
	var payload xendit.InvoiceWebhookPayload

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		slog.Error("Webhook decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	callbackToken := r.Header.Get("x-callback-token")

	if err := h.paymentService.HandleInvoiceWebhook(r.Context(), callbackToken, payload); err != nil {
		slog.Error("Webhook service error", "error", err, "external_id", payload.ExternalID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Webhook processed", nil)
}
