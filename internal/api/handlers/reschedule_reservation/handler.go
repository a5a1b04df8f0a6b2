package reschedule_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BilliardBookingService/internal/api/handlers"
	"github.com/m04kA/BilliardBookingService/internal/api/middleware"
	rescheduleReservation "github.com/m04kA/BilliardBookingService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidInput         = "некорректные дата, время или длительность"
	msgNotFound             = "бронь не найдена"
	msgCannotReschedule     = "бронь в текущем статусе нельзя перенести"
	msgTableInactive        = "стол выведен из работы"
	msgVenueClosed          = "клуб закрыт в выбранную дату"
	msgInvalidTimeSlot      = "некорректный временной слот"
	msgSlotInPast           = "выбранное время уже прошло"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgGapNotAllowed        = "перенос оставит непродаваемый промежуток в 30 минут"
	msgDurationTooLong      = "длительность превышает максимально доступную с этого времени"
	msgConcurrentUpdate     = "стол только что забронирован, обновите сетку и попробуйте снова"
	msgUnavailableData      = "расписание временно недоступно, попробуйте позже"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID, userID))
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleReservation.ErrCannotReschedule):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Cannot reschedule: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, rescheduleReservation.ErrTableInactive):
			handlers.RespondBadRequest(w, msgTableInactive)

		case errors.Is(err, rescheduleReservation.ErrVenueClosed):
			handlers.RespondBadRequest(w, msgVenueClosed)

		case errors.Is(err, rescheduleReservation.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleReservation.ErrSlotInPast):
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, rescheduleReservation.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleReservation.ErrGapNotAllowed):
			handlers.RespondConflict(w, msgGapNotAllowed)

		case errors.Is(err, rescheduleReservation.ErrDurationTooLong):
			handlers.RespondConflict(w, msgDurationTooLong)

		case errors.Is(err, rescheduleReservation.ErrConcurrentUpdate):
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, rescheduleReservation.ErrUpstreamUnavailable):
			h.logger.Error("PATCH /reservations/{id}/reschedule - Availability data unavailable: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondServiceUnavailable(w, msgUnavailableData)

		default:
			h.logger.Error("PATCH /reservations/{id}/reschedule - Failed: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reschedule - Reservation rescheduled: reservation_id=%d, user_id=%d, %s %s",
		result.ID, userID, result.Date, result.StartTime.Short())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
