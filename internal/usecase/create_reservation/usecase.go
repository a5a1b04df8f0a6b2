package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	reservationRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/txmanager"
)

const operation = "create"

// UseCase use case создания брони стола
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

// Execute выполняет use case создания брони.
// Проверка доступности и вставка идут в одной сериализуемой транзакции:
// брони стола на дату читаются с блокировкой, движок перепроверяет интервал на свежем снимке.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, table=%d, date=%s, start=%s, duration=%.2fh",
		req.UserID, req.TableID, req.Date, req.StartTime, req.DurationHours)

	// 1. Валидация входных данных
	date, start, minutes, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}
	end, err := start.AddMinutes(minutes)
	if err != nil {
		uc.logger.Warn("CreateReservation: reservation crosses midnight: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	// 2. Получаем текущее время площадки
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Проверяем стол
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateReservation: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CreateReservation: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}
	if !table.IsActive {
		uc.logger.Warn("CreateReservation: table id=%d is inactive", req.TableID)
		return nil, ErrTableInactive
	}

	var result *domain.Reservation

	// 4. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Снимок расписания и активных броней (FOR UPDATE)
		snap, err := uc.engine.Snapshot(txCtx, req.TableID, date)
		if err != nil {
			if errors.Is(err, scheduling.ErrUpstreamUnavailable) {
				return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
			}
			return fmt.Errorf("%w: snapshot: %v", ErrInternal, err)
		}

		// 4.2. Строгая проверка интервала
		if err := snap.CheckBooking(start, minutes, now); err != nil {
			return mapBookingError(err)
		}

		// 4.3. Сохраняем бронь
		reservation := &domain.Reservation{
			TableID:       req.TableID,
			Date:          date,
			StartTime:     start,
			EndTime:       end,
			DurationHours: req.DurationHours,
			Status:        domain.StatusPending,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
			CreatedBy:     &req.UserID,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrSlotNotAvailable):
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			case errors.Is(err, reservationRepo.ErrConcurrentUpdate):
				return ErrConcurrentUpdate
			case errors.Is(err, reservationRepo.ErrTableNotFound):
				return ErrTableNotFound
			}
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			err = ErrConcurrentUpdate
		}
		uc.logFailure(req, err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, table=%d, %s %s-%s",
		result.ID, result.TableID, result.Date, result.StartTime.Short(), result.EndTime.Short())

	return toResponse(result), nil
}

func (uc *UseCase) logFailure(req *Request, err error) {
	switch {
	case errors.Is(err, ErrUpstreamUnavailable):
		uc.metrics.RecordAvailabilityUnknown(operation)
		uc.logger.Error("CreateReservation: availability data unavailable for table=%d: %v", req.TableID, err)
	case isConflict(err):
		uc.metrics.RecordReservationConflict(operation)
		uc.logger.Warn("CreateReservation: conflict for table=%d, date=%s, start=%s: %v", req.TableID, req.Date, req.StartTime, err)
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateReservation: table=%d: %v", req.TableID, err)
	default:
		uc.logger.Warn("CreateReservation: rejected for table=%d: %v", req.TableID, err)
	}
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:            r.ID,
		TableID:       r.TableID,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		DurationHours: r.DurationHours,
		Status:        string(r.Status),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
