package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/domain/moderation"
	"github.com/kaamsetu/kaamsetu-backend-go/internal/handler/http/response"
)

type ModerationHandler interface {
	Decide(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type ModerationHandlerImpl struct {
	moderationService moderation.ModerationService
}

func NewModerationHandler(moderationService moderation.ModerationService) ModerationHandler {
	return &ModerationHandlerImpl{moderationService: moderationService}
}

// Decide implements ModerationHandler.
func (h *ModerationHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req moderation.DecideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.moderationService.Decide(r.Context(), req); err != nil {
		slog.Error("Decide service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Moderation decision recorded", nil)
}

// ListPending implements ModerationHandler.
func (h *ModerationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("entity_type")

	var entityType moderation.EntityType
	if raw != "" {
		parsed, err := moderation.ParseEntityType(raw)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		entityType = parsed
	}

	queue, err := h.moderationService.ListPending(r.Context(), entityType)
	if err != nil {
		slog.Error("ListPending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, queue)
}
