package get_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/service/venue"
)

const (
	msgInvalidWeekday = "некорректный день недели, ожидается Monday..Sunday"
	msgNotFound       = "расписание на этот день не задано"
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

// Handle GET /api/v1/schedules/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekday := mux.Vars(r)["weekday"]

	schedule, err := h.service.GetSchedule(r.Context(), weekday)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrInvalidInput):
			h.logger.Warn("GET /schedules/{weekday} - Invalid weekday: %q", weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, venue.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{weekday} - Schedule not found: %s", weekday)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /schedules/{weekday} - Failed: weekday=%s, error=%v", weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}
