package get_max_duration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	getMaxDuration "github.com/m04kA/BilliardBookingService/internal/usecase/get_max_duration"
)

const (
	msgInvalidTableID  = "некорректный ID стола"
	msgMissingParams   = "параметры date и startTime обязательны"
	msgInvalidParams   = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgTableNotFound   = "стол не найден"
	msgUnavailableData = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	useCase GetMaxDurationUseCase
	logger  Logger
}

func NewHandler(useCase GetMaxDurationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/max-duration
// Query params: date (YYYY-MM-DD), startTime (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(mux.Vars(r)["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/max-duration - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	query := r.URL.Query()
	dateStr, startStr := query.Get("date"), query.Get("startTime")
	if dateStr == "" || startStr == "" {
		h.logger.Warn("GET /tables/{id}/max-duration - Missing date or startTime")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(tableID, dateStr, startStr))
	if err != nil {
		switch {
		case errors.Is(err, getMaxDuration.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/max-duration - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getMaxDuration.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/max-duration - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, getMaxDuration.ErrUpstreamUnavailable):
			h.logger.Error("GET /tables/{id}/max-duration - Availability data unavailable: table_id=%d, error=%v", tableID, err)
			handlers.RespondServiceUnavailable(w, msgUnavailableData)

		default:
			h.logger.Error("GET /tables/{id}/max-duration - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/max-duration - table_id=%d, date=%s, start=%s, max=%.1fh",
		tableID, dateStr, startStr, result.MaxHours)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
