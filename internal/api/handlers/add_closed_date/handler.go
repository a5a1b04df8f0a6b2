package add_closed_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/service/venue"
	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректная дата или слишком длинная причина"
	msgAlreadyExists      = "эта дата уже отмечена как нерабочая"
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/closed-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddClosedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closed-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	closed, err := h.service.AddClosedDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrInvalidInput):
			h.logger.Warn("POST /closed-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, venue.ErrClosedDateExists):
			h.logger.Warn("POST /closed-dates - Already exists: date=%s", req.Date)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /closed-dates - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /closed-dates - Closed date added: %s", closed.Date)
	handlers.RespondJSON(w, http.StatusCreated, closed)
}
