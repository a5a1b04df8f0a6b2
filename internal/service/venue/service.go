package venue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BilliardBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/BilliardBookingService/internal/service/venue/models"
	"github.com/m04kA/BilliardBookingService/pkg/types"
)

// Service сервис настроек площадки: расписание, закрытые даты, столы
type Service struct {
	scheduleRepo ScheduleRepository
	tableRepo    TableRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса площадки
func NewService(
	scheduleRepo ScheduleRepository,
	tableRepo TableRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		tableRepo:    tableRepo,
		logger:       logger,
	}
}

// GetSchedules возвращает расписание на всю неделю
func (s *Service) GetSchedules(ctx context.Context) (*models.ScheduleListResponse, error) {
	s.logger.Info("GetSchedules: fetching weekly schedule")

	schedules, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSchedules - repository error: %v", ErrInternal, err)
	}

	resp := &models.ScheduleListResponse{Schedules: make([]models.ScheduleResponse, 0, len(schedules))}
	for _, schedule := range schedules {
		resp.Schedules = append(resp.Schedules, models.FromDomainSchedule(schedule))
	}

	return resp, nil
}

// GetSchedule возвращает расписание одного дня недели
func (s *Service) GetSchedule(ctx context.Context, weekdayName string) (*models.ScheduleResponse, error) {
	weekday, ok := domain.ParseWeekday(weekdayName)
	if !ok {
		s.logger.Warn("GetSchedule: invalid weekday=%q", weekdayName)
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, weekdayName)
	}

	schedule, err := s.scheduleRepo.GetByWeekday(ctx, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: schedule for %s not found", weekday)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetSchedule: repository error for %s: %v", weekday, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSchedule(schedule)
	return &resp, nil
}

// UpdateSchedule создает или заменяет расписание дня недели.
// Время закрытия может быть "24:00" (работа до полуночи).
func (s *Service) UpdateSchedule(ctx context.Context, weekdayName string, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: weekday=%s, open=%s, close=%s", weekdayName, req.OpenTime, req.CloseTime)

	schedule, err := toDomainSchedule(weekdayName, req)
	if err != nil {
		s.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrInvalidWindow) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("UpdateSchedule: repository error for %s: %v", schedule.Weekday, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: schedule for %s saved, open=%t", saved.Weekday, saved.IsOpen())
	resp := models.FromDomainSchedule(saved)
	return &resp, nil
}

// ListClosedDates возвращает закрытые даты в диапазоне
func (s *Service) ListClosedDates(ctx context.Context, req *models.ListClosedDatesRequest) (*models.ClosedDateListResponse, error) {
	var from, to types.Date
	var err error

	if req.From != "" {
		if from, err = types.ParseDate(req.From); err != nil {
			return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
		}
	}
	if req.To != "" {
		if to, err = types.ParseDate(req.To); err != nil {
			return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s is before start %s", ErrInvalidInput, to, from)
	}

	dates, err := s.scheduleRepo.ListClosedDates(ctx, from, to)
	if err != nil {
		s.logger.Error("ListClosedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClosedDates - repository error: %v", ErrInternal, err)
	}

	resp := &models.ClosedDateListResponse{ClosedDates: make([]models.ClosedDateResponse, 0, len(dates))}
	for _, d := range dates {
		resp.ClosedDates = append(resp.ClosedDates, models.FromDomainClosedDate(d))
	}

	return resp, nil
}

// AddClosedDate закрывает площадку на дату
func (s *Service) AddClosedDate(ctx context.Context, req *models.AddClosedDateRequest) (*models.ClosedDateResponse, error) {
	s.logger.Info("AddClosedDate: date=%s", req.Date)

	date, err := types.ParseDate(req.Date)
	if err != nil {
		s.logger.Warn("AddClosedDate: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	closedDate := &domain.ClosedDate{Date: date}
	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if len([]rune(reason)) > domain.MaxClosedReasonLength {
			return nil, fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidInput, domain.MaxClosedReasonLength)
		}
		if reason != "" {
			closedDate.Reason = &reason
		}
	}

	saved, err := s.scheduleRepo.AddClosedDate(ctx, closedDate)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrClosedDateExists) {
			s.logger.Warn("AddClosedDate: date=%s already closed", date)
			return nil, ErrClosedDateExists
		}
		s.logger.Error("AddClosedDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: AddClosedDate - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainClosedDate(saved)
	return &resp, nil
}

// DeleteClosedDate снимает закрытие с даты
func (s *Service) DeleteClosedDate(ctx context.Context, dateStr string) error {
	s.logger.Info("DeleteClosedDate: date=%s", dateStr)

	date, err := types.ParseDate(dateStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.DeleteClosedDate(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrClosedDateNotFound) {
			s.logger.Warn("DeleteClosedDate: date=%s is not closed", date)
			return ErrClosedDateNotFound
		}
		s.logger.Error("DeleteClosedDate: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: DeleteClosedDate - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ListTables возвращает столы площадки
func (s *Service) ListTables(ctx context.Context, onlyActive bool) (*models.TableListResponse, error) {
	tables, err := s.tableRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListTables: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTables - repository error: %v", ErrInternal, err)
	}

	resp := &models.TableListResponse{Tables: make([]models.TableResponse, 0, len(tables))}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, models.FromDomainTable(t))
	}

	return resp, nil
}

func toDomainSchedule(weekdayName string, req *models.UpdateScheduleRequest) (*domain.OperatingSchedule, error) {
	weekday, ok := domain.ParseWeekday(weekdayName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, weekdayName)
	}

	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}
	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}
	if !openTime.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: openTime %s must be before closeTime %s", ErrInvalidInput, openTime.Short(), closeTime.Short())
	}

	schedule := &domain.OperatingSchedule{
		Weekday:   weekday,
		OpenTime:  openTime,
		CloseTime: closeTime,
		IsActive:  true,
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	if req.IsClosedOverride != nil {
		schedule.IsClosedOverride = *req.IsClosedOverride
	}

	return schedule, nil
}
