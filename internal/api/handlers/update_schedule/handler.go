package update_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/service/venue"
	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание: время HH:MM в 24-часовом формате, открытие раньше закрытия"
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

// Handle PUT /api/v1/schedules/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	weekday := mux.Vars(r)["weekday"]

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.UpdateSchedule(r.Context(), weekday, &req)
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrInvalidInput):
			h.logger.Warn("PUT /schedules/{weekday} - Invalid schedule: weekday=%s, error=%v", weekday, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /schedules/{weekday} - Failed: weekday=%s, error=%v", weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{weekday} - Schedule updated: %s %s-%s, open=%t",
		schedule.Weekday, schedule.OpenTime, schedule.CloseTime, schedule.IsOpen)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
