package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	reservationRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
	"github.com/m04kA/BilliardBookingService/internal/service/reservations/models"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Service сервис для чтения броней и смены их статуса
type Service struct {
	reservationRepo ReservationRepository
	tableRepo       TableRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	tableRepo TableRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		tableRepo:       tableRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetTableReservations получает брони стола на дату (вид для администратора зала)
func (s *Service) GetTableReservations(ctx context.Context, req *models.GetTableReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetTableReservations: fetching reservations for table=%d, date=%s, status=%v, includeInactive=%t",
		req.TableID, req.Date, req.Status, req.IncludeInactive)

	date, err := types.ParseDate(req.Date)
	if err != nil {
		s.logger.Warn("GetTableReservations: invalid date=%q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filter := domain.ReservationsFilter{
		TableID:         req.TableID,
		Date:            date,
		IncludeInactive: req.IncludeInactive,
	}
	if req.Status != nil {
		status, ok := domain.ParseReservationStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetTableReservations: invalid status=%s", *req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if _, err := s.tableRepo.GetByID(ctx, req.TableID); err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			s.logger.Warn("GetTableReservations: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetTableReservations: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: GetTableReservations - table repository error: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.GetByTableAndDate(ctx, filter)
	if err != nil {
		s.logger.Error("GetTableReservations: repository error for table=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: GetTableReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTableReservations: fetched %d reservations for table=%d", len(reservations), req.TableID)
	return models.FromDomainReservationList(reservations), nil
}

// UpdateStatus переводит бронь в новый статус.
// Допустимые переходы задаются domain.Reservation.CanTransitionTo.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d to status=%s by user=%d", id, req.Status, req.UserID)

	next, ok := domain.ParseReservationStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Reservation
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get reservation: %v", ErrInternal, err)
		}

		if !reservation.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, next)
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, next); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update status: %v", ErrInternal, err)
		}

		reservation.Status = next
		updated = reservation
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound), errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: reservation id=%d: %v", id, err)
		default:
			s.logger.Error("UpdateStatus: reservation id=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: reservation id=%d is now %s", id, next)
	return models.FromDomainReservation(updated), nil
}
