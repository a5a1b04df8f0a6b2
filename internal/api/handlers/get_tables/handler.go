package get_tables

import (
	"net/http"
	"strconv"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
)

const msgInvalidActive = "параметр active должен быть true или false"

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

// Handle GET /api/v1/tables
// Query params: active (optional, по умолчанию true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := true
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /tables - Invalid active param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidActive)
			return
		}
		onlyActive = v
	}

	tables, err := h.service.ListTables(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /tables - Failed to list tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tables - Tables retrieved: count=%d, only_active=%t", len(tables.Tables), onlyActive)
	handlers.RespondJSON(w, http.StatusOK, tables)
}
