package list_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/metrics"
)

const operation = "list_slots"

// UseCase use case получения сетки слотов стола на дату
type UseCase struct {
	engine       AvailabilityEngine
	tableRepo    TableRepository
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location часовой пояс площадки: "сегодня" и "сейчас" считаются в нем.
func NewUseCase(
	engine AvailabilityEngine,
	tableRepo TableRepository,
	m Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:       engine,
		tableRepo:    tableRepo,
		metrics:      m,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAvailableSlots: table=%d, date=%s", req.TableID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ListAvailableSlots: validation failed: %v", err)
		uc.metrics.RecordSlotQuery(metrics.OutcomeInvalid)
		return nil, err
	}

	// 2. Проверяем стол
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("ListAvailableSlots: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("ListAvailableSlots: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	resp := &Response{TableID: req.TableID, Date: date, Slots: []domain.CandidateSlot{}}

	// Выведенный из работы стол не бронируется
	if !table.IsActive {
		uc.logger.Info("ListAvailableSlots: table id=%d is inactive", req.TableID)
		uc.metrics.RecordSlotQuery(metrics.OutcomeClosed)
		resp.Closed = true
		return resp, nil
	}

	// 3. Текущее время площадки
	now := uc.timeProvider.Now().In(uc.location)

	// 4. Строим и размечаем сетку
	slots, err := uc.engine.ListAvailableSlots(ctx, req.TableID, date, now)
	if err != nil {
		if errors.Is(err, scheduling.ErrUpstreamUnavailable) {
			uc.logger.Error("ListAvailableSlots: availability data unavailable for table=%d, date=%s: %v", req.TableID, date, err)
			uc.metrics.RecordAvailabilityUnknown(operation)
			uc.metrics.RecordSlotQuery(metrics.OutcomeUnavailable)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		uc.logger.Error("ListAvailableSlots: engine error for table=%d, date=%s: %v", req.TableID, date, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if len(slots) == 0 {
		uc.logger.Info("ListAvailableSlots: venue is closed on %s", date)
		uc.metrics.RecordSlotQuery(metrics.OutcomeClosed)
		resp.Closed = true
		return resp, nil
	}

	resp.Slots = slots
	uc.metrics.RecordSlotQuery(metrics.OutcomeOK)
	uc.logger.Info("ListAvailableSlots: generated %d slots (%d available) for table=%d, date=%s",
		len(slots), resp.AvailableCount(), req.TableID, date)

	return resp, nil
}
