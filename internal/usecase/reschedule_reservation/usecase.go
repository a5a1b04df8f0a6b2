package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	reservationRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/txmanager"
)

const operation = "reschedule"

// UseCase use case переноса брони на другое время
type UseCase struct {
	engine          AvailabilityEngine
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	metrics         Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine AvailabilityEngine,
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	m Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:          engine,
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		metrics:         m,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute переносит бронь. Сама бронь исключается из снимка,
// поэтому перенос внутри собственного интервала допустим.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: id=%d, user=%d, new date=%s, new start=%s",
		req.ReservationID, req.UserID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	date, start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время площадки
	now := uc.timeProvider.Now().In(uc.location)

	var (
		result   *domain.Reservation
		previous domain.Reservation
	)

	// 3. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Бронь с блокировкой строки
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}
		if !reservation.CanBeRescheduled() {
			return fmt.Errorf("%w: status %s", ErrCannotReschedule, reservation.Status)
		}
		previous = *reservation

		// 3.2. Стол должен быть в работе
		table, err := uc.tableRepo.GetByID(txCtx, reservation.TableID)
		if err != nil {
			if errors.Is(err, tableRepo.ErrTableNotFound) {
				return fmt.Errorf("%w: table %d", ErrInternal, reservation.TableID)
			}
			return fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
		}
		if !table.IsActive {
			return ErrTableInactive
		}

		// 3.3. Длительность: новая или прежняя
		minutes := domain.HoursToMinutes(reservation.DurationHours)
		hours := reservation.DurationHours
		if req.DurationHours != nil {
			minutes, _ = durationMinutes(*req.DurationHours)
			hours = *req.DurationHours
		}
		end, err := start.AddMinutes(minutes)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}

		// 3.4. Снимок новой даты без переносимой брони
		snap, err := uc.engine.Snapshot(txCtx, reservation.TableID, date)
		if err != nil {
			if errors.Is(err, scheduling.ErrUpstreamUnavailable) {
				return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
			}
			return fmt.Errorf("%w: snapshot: %v", ErrInternal, err)
		}

		if err := snap.Without(reservation.ID).CheckBooking(start, minutes, now); err != nil {
			return mapBookingError(err)
		}

		// 3.5. Сохраняем
		reservation.Date = date
		reservation.StartTime = start
		reservation.EndTime = end
		reservation.DurationHours = hours
		reservation.Status = domain.StatusRescheduled

		if err := uc.reservationRepo.Reschedule(txCtx, reservation); err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrSlotNotAvailable):
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			case errors.Is(err, reservationRepo.ErrConcurrentUpdate):
				return ErrConcurrentUpdate
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		result = reservation
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			err = ErrConcurrentUpdate
		}
		switch {
		case errors.Is(err, ErrUpstreamUnavailable):
			uc.metrics.RecordAvailabilityUnknown(operation)
			uc.logger.Error("RescheduleReservation: availability data unavailable for id=%d: %v", req.ReservationID, err)
		case isConflict(err):
			uc.metrics.RecordReservationConflict(operation)
			uc.logger.Warn("RescheduleReservation: conflict for id=%d: %v", req.ReservationID, err)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("RescheduleReservation: id=%d: %v", req.ReservationID, err)
		default:
			uc.logger.Warn("RescheduleReservation: rejected id=%d: %v", req.ReservationID, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleReservation: id=%d moved from %s %s to %s %s",
		result.ID, previous.Date, previous.StartTime.Short(), result.Date, result.StartTime.Short())

	return &Response{
		ID:                result.ID,
		TableID:           result.TableID,
		Date:              result.Date,
		StartTime:         result.StartTime,
		EndTime:           result.EndTime,
		DurationHours:     result.DurationHours,
		Status:            string(result.Status),
		PreviousDate:      previous.Date,
		PreviousStartTime: previous.StartTime,
		CustomerName:      result.CustomerName,
		CustomerPhone:     result.CustomerPhone,
		Notes:             result.Notes,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
