package check_slot_bookable

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
)

const operation = "bookable"

// UseCase use case проверки, свободен ли интервал на столе
type UseCase struct {
	engine    AvailabilityEngine
	tableRepo TableRepository
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine AvailabilityEngine,
	tableRepo TableRepository,
	m Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:    engine,
		tableRepo: tableRepo,
		metrics:   m,
		logger:    logger,
	}
}

// Execute выполняет проверку. Ошибка чтения расписания или броней
// не возвращается как error, а дает AvailabilityUnknown.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlotBookable: table=%d, date=%s, start=%s, duration=%.2fh",
		req.TableID, req.Date, req.StartTime, req.DurationHours)

	// 1. Валидация входных данных
	date, start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckSlotBookable: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		TableID:       req.TableID,
		Date:          date,
		StartTime:     start,
		DurationHours: req.DurationHours,
	}

	// 2. Проверяем стол
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CheckSlotBookable: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CheckSlotBookable: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}
	if !table.IsActive {
		resp.Availability = domain.AvailabilityUnavailable
		return resp, nil
	}

	// 3. Проверка движком
	decision := uc.engine.IsSlotBookable(ctx, req.TableID, date, start, req.DurationHours)
	resp.Availability = decision.Availability

	if decision.Availability == domain.AvailabilityUnknown {
		uc.logger.Error("CheckSlotBookable: availability unknown for table=%d, date=%s: %v", req.TableID, date, decision.Err)
		uc.metrics.RecordAvailabilityUnknown(operation)
		return resp, nil
	}

	uc.logger.Info("CheckSlotBookable: table=%d, date=%s, start=%s -> %s", req.TableID, date, start.Short(), decision.Availability)
	return resp, nil
}
