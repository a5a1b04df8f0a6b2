package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/api/middleware"
	createReservation "github.com/m04kA/BilliardBookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные брони"
	msgTableNotFound      = "стол не найден"
	msgTableInactive      = "стол выведен из работы"
	msgVenueClosed        = "клуб закрыт в выбранную дату"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgSlotInPast         = "выбранное время уже прошло"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgGapNotAllowed      = "бронь оставит непродаваемый промежуток в 30 минут"
	msgDurationTooLong    = "длительность превышает максимально доступную с этого времени"
	msgConcurrentUpdate   = "стол только что забронирован, обновите сетку и попробуйте снова"
	msgUnavailableData    = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrTableInactive):
			h.logger.Warn("POST /reservations - Table inactive: table_id=%d", req.TableID)
			handlers.RespondBadRequest(w, msgTableInactive)

		case errors.Is(err, createReservation.ErrVenueClosed):
			h.logger.Warn("POST /reservations - Venue closed: table_id=%d, date=%s", req.TableID, req.Date)
			handlers.RespondBadRequest(w, msgVenueClosed)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: table_id=%d, start=%s", req.TableID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrSlotInPast):
			h.logger.Warn("POST /reservations - Slot in past: table_id=%d, date=%s, start=%s", req.TableID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: table_id=%d, date=%s, start=%s", req.TableID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrGapNotAllowed):
			h.logger.Warn("POST /reservations - Gap not allowed: table_id=%d, start=%s", req.TableID, req.StartTime)
			handlers.RespondConflict(w, msgGapNotAllowed)

		case errors.Is(err, createReservation.ErrDurationTooLong):
			h.logger.Warn("POST /reservations - Duration too long: table_id=%d, start=%s, duration=%.2f", req.TableID, req.StartTime, req.DurationHours)
			handlers.RespondConflict(w, msgDurationTooLong)

		case errors.Is(err, createReservation.ErrConcurrentUpdate):
			h.logger.Warn("POST /reservations - Concurrent reservation: table_id=%d", req.TableID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, createReservation.ErrUpstreamUnavailable):
			h.logger.Error("POST /reservations - Availability data unavailable: table_id=%d, error=%v", req.TableID, err)
			handlers.RespondServiceUnavailable(w, msgUnavailableData)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, table_id=%d, error=%v",
				userID, req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, table_id=%d, user_id=%d",
		result.ID, result.TableID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
