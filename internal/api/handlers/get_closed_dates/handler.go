package get_closed_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/service/venue"
	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

const msgInvalidRange = "некорректный диапазон дат, ожидается from <= to в формате YYYY-MM-DD"

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

// Handle GET /api/v1/closed-dates
// Query params: from, to (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListClosedDatesRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}

	result, err := h.service.ListClosedDates(r.Context(), req)
	if err != nil {
		if errors.Is(err, venue.ErrInvalidInput) {
			h.logger.Warn("GET /closed-dates - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /closed-dates - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
