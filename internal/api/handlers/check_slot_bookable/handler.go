package check_slot_bookable

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/domain"
	checkSlot "github.com/m04kA/BilliardBookingService/internal/usecase/check_slot_bookable"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgMissingParams  = "параметры date, startTime и durationHours обязательны"
	msgInvalidParams  = "некорректные параметры: дата YYYY-MM-DD, время HH:MM, длительность кратна 0.25 часа"
	msgTableNotFound  = "стол не найден"
)

type Handler struct {
	useCase CheckSlotBookableUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotBookableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/bookable
// Query params: date, startTime, durationHours.
// Ответ unknown отдается со статусом 503: клиент не должен считать интервал свободным.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(mux.Vars(r)["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/bookable - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	query := r.URL.Query()
	dateStr, startStr, durationStr := query.Get("date"), query.Get("startTime"), query.Get("durationHours")
	if dateStr == "" || startStr == "" || durationStr == "" {
		h.logger.Warn("GET /tables/{id}/bookable - Missing query params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tableID, dateStr, startStr, durationStr)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/bookable - Invalid durationHours: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/bookable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, checkSlot.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/bookable - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("GET /tables/{id}/bookable - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.Availability == domain.AvailabilityUnknown {
		h.logger.Warn("GET /tables/{id}/bookable - Availability unknown: table_id=%d, date=%s, start=%s",
			tableID, dateStr, startStr)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	h.logger.Info("GET /tables/{id}/bookable - table_id=%d, date=%s, start=%s, duration=%sh, availability=%s",
		tableID, dateStr, startStr, durationStr, response.Availability)
	handlers.RespondJSON(w, http.StatusOK, response)
}
