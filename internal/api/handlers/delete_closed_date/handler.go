package delete_closed_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/service/venue"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound    = "нерабочая дата не найдена"
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

// Handle DELETE /api/v1/closed-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	if err := h.service.DeleteClosedDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, venue.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, venue.ErrClosedDateNotFound):
			h.logger.Warn("DELETE /closed-dates/{date} - Not found: %s", date)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /closed-dates/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /closed-dates/{date} - Closed date removed: %s", date)
	w.WriteHeader(http.StatusNoContent)
}
