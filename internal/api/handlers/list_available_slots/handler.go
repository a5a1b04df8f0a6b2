package list_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	listSlots "github.com/m04kA/BilliardBookingService/internal/usecase/list_available_slots"
)

const (
	msgInvalidTableID  = "некорректный ID стола"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTableNotFound   = "стол не найден"
	msgUnavailableData = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	useCase ListAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем tableId из URL
	tableID, err := strconv.ParseInt(mux.Vars(r)["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/slots - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tables/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(tableID, dateStr))
	if err != nil {
		switch {
		case errors.Is(err, listSlots.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/slots - Invalid input: table_id=%d, date=%s, error=%v", tableID, dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, listSlots.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/slots - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, listSlots.ErrUpstreamUnavailable):
			h.logger.Error("GET /tables/{id}/slots - Availability data unavailable: table_id=%d, date=%s, error=%v", tableID, dateStr, err)
			handlers.RespondServiceUnavailable(w, msgUnavailableData)

		default:
			h.logger.Error("GET /tables/{id}/slots - Failed to get slots: table_id=%d, date=%s, error=%v", tableID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /tables/{id}/slots - Slots retrieved: table_id=%d, date=%s, slots=%d, available=%d",
		tableID, dateStr, len(response.Slots), response.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
