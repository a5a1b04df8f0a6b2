package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/BilliardBookingService/internal/config"
	catalogRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/schedule"
	tableRepo "github.com/m04kA/BilliardBookingService/internal/infra/storage/table"
	"github.com/m04kA/BilliardBookingService/internal/scheduling"
	"github.com/m04kA/BilliardBookingService/pkg/dbmetrics"
	"github.com/m04kA/BilliardBookingService/pkg/logger"
	"github.com/m04kA/BilliardBookingService/pkg/metrics"
	"github.com/m04kA/BilliardBookingService/pkg/txmanager"
)

// app общие зависимости команд: конфиг, логгер, БД, репозитории и движок
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	metrics  *metrics.Metrics
	location *time.Location

	db      *sql.DB
	wrapped *dbmetrics.DB
	stopCh  chan struct{}

	tables       *tableRepo.Repository
	schedules    *scheduleRepo.Repository
	reservations *reservationRepo.Repository
	catalog      *catalogRepo.Repository
	txManager    *txmanager.TransactionManager
	engine       *scheduling.Engine
}

// newApp загружает конфигурацию, инициализирует логгер и подключается к БД.
// withMetrics включает сбор метрик, если он разрешен в конфиге (для serve).
func newApp(ctx context.Context, configPath string, withMetrics bool) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	location, err := cfg.Venue.Location()
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		location: location,
		stopCh:   make(chan struct{}),
	}

	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = log.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	a.db = db
	a.wrapped = dbmetrics.WrapWithDefault(db, a.metrics, a.stopCh)

	// Репозитории и движок доступности
	a.tables = tableRepo.NewRepository(a.wrapped)
	a.schedules = scheduleRepo.NewRepository(a.wrapped)
	a.reservations = reservationRepo.NewRepository(a.wrapped)
	a.catalog = catalogRepo.NewRepository(a.wrapped)
	a.txManager = txmanager.NewTransactionManager(a.wrapped)
	a.engine = scheduling.NewEngine(a.schedules, a.reservations, cfg.Venue.SchedulingPolicy())

	return a, nil
}

// Close останавливает сбор статистики пула и закрывает ресурсы
func (a *app) Close() {
	close(a.stopCh)
	if err := a.db.Close(); err != nil {
		a.log.Error("Failed to close database: %v", err)
	}
	_ = a.log.Close()
}
