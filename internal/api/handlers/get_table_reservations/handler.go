package get_table_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/service/reservations"
	"github.com/m04kA/BilliardBookingService/internal/service/reservations/models"
)

const (
	msgInvalidTableID   = "некорректный ID стола"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus    = "неизвестный статус брони"
	msgInvalidInclusive = "includeInactive должен быть true или false"
	msgTableNotFound    = "стол не найден"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/reservations
// Query params: date (required), status (optional), includeInactive (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tableID, err := strconv.ParseInt(mux.Vars(r)["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/reservations - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	query := r.URL.Query()
	req := &models.GetTableReservationsRequest{
		TableID: tableID,
		Date:    query.Get("date"),
	}
	if req.Date == "" {
		h.logger.Warn("GET /tables/{id}/reservations - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidInclusive)
			return
		}
		req.IncludeInactive = include
	}

	result, err := h.service.GetTableReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /tables/{id}/reservations - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/reservations - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("GET /tables/{id}/reservations - Failed: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/reservations - table_id=%d, date=%s, count=%d", tableID, req.Date, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
