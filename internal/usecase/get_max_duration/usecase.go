package get_max_duration

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
)

const operation = "max_duration"

// UseCase use case расчета максимальной длительности сессии от заданного старта
type UseCase struct {
	engine          AvailabilityEngine
	tableRepo       TableRepository
	catalog         DurationCatalog
	fallbackCatalog []float64
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// fallbackCatalog используется, если каталог в БД пуст или недоступен.
func NewUseCase(
	engine AvailabilityEngine,
	tableRepo TableRepository,
	catalog DurationCatalog,
	fallbackCatalog []float64,
	m Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:          engine,
		tableRepo:       tableRepo,
		catalog:         catalog,
		fallbackCatalog: fallbackCatalog,
		metrics:         m,
		logger:          logger,
	}
}

// Execute выполняет use case расчета максимальной длительности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMaxDuration: table=%d, date=%s, start=%s", req.TableID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	date, start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetMaxDuration: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем стол
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("GetMaxDuration: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("GetMaxDuration: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	resp := &Response{
		TableID:   req.TableID,
		Date:      date,
		StartTime: start,
		Durations: []domain.DurationOption{},
	}
	if !table.IsActive {
		uc.logger.Info("GetMaxDuration: table id=%d is inactive", req.TableID)
		return resp, nil
	}

	// 3. Считаем максимум
	maxHours, err := uc.engine.MaxDuration(ctx, req.TableID, date, start)
	if err != nil {
		if errors.Is(err, scheduling.ErrUpstreamUnavailable) {
			uc.logger.Error("GetMaxDuration: availability data unavailable: %v", err)
			uc.metrics.RecordAvailabilityUnknown(operation)
			return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		uc.logger.Error("GetMaxDuration: engine error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resp.MaxHours = maxHours

	// 4. Фильтруем каталог длительностей
	resp.Durations = scheduling.FilterDurations(uc.loadCatalog(ctx), maxHours)

	uc.logger.Info("GetMaxDuration: table=%d, date=%s, start=%s, max=%.1fh, options=%d",
		req.TableID, date, start.Short(), maxHours, len(resp.Durations))

	return resp, nil
}

// loadCatalog читает каталог из БД, при ошибке или пустом каталоге берет значения из конфигурации
func (uc *UseCase) loadCatalog(ctx context.Context) []domain.DurationOption {
	options, err := uc.catalog.ListActive(ctx)
	if err != nil {
		uc.logger.Warn("GetMaxDuration: failed to load duration catalog, using configured fallback: %v", err)
	}
	if err == nil && len(options) > 0 {
		return options
	}

	fallback := make([]domain.DurationOption, 0, len(uc.fallbackCatalog))
	for _, hours := range uc.fallbackCatalog {
		fallback = append(fallback, domain.DurationOption{Hours: hours, Active: true})
	}
	return fallback
}
