package get_schedules

import (
	"net/http"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
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

// Handle GET /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.GetSchedules(r.Context())
	if err != nil {
		h.logger.Error("GET /schedules - Failed to get schedules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules - Schedules retrieved: count=%d", len(schedules.Schedules))
	handlers.RespondJSON(w, http.StatusOK, schedules)
}
