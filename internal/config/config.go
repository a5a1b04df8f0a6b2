package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/BilliardBookingService/internal/scheduling"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Venue    VenueConfig    `toml:"venue"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// VenueConfig параметры площадки и политики расписания
type VenueConfig struct {
	Timezone                 string    `toml:"timezone"`
	SlotStepMinutes          int       `toml:"slot_step_minutes"`
	TrailingWindowMinutes    int       `toml:"trailing_window_minutes"`
	GapRule                  string    `toml:"gap_rule"` // exact | below
	GapGranularityMinutes    int       `toml:"gap_granularity_minutes"`
	MinIdleGapMinutes        int       `toml:"min_idle_gap_minutes"`
	NextBookingBufferMinutes int       `toml:"next_booking_buffer_minutes"`
	RoundingMinutes          int       `toml:"rounding_minutes"`
	DurationCatalog          []float64 `toml:"duration_catalog"` // часы, если таблица duration_options пуста
}

// Load читает TOML файл, затем .env (если есть) и переменные окружения BOOKING_*
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	policy := scheduling.DefaultPolicy()

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "billiard-booking",
		},
		Venue: VenueConfig{
			Timezone:                 "UTC",
			SlotStepMinutes:          policy.SlotStepMinutes,
			TrailingWindowMinutes:    policy.TrailingWindowMinutes,
			GapRule:                  string(policy.GapRule),
			GapGranularityMinutes:    policy.GapGranularityMinutes,
			MinIdleGapMinutes:        policy.MinIdleGapMinutes,
			NextBookingBufferMinutes: policy.NextBookingBufferMinutes,
			RoundingMinutes:          policy.RoundingMinutes,
			DurationCatalog:          []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4},
		},
	}
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	setString(&c.Database.Host, "BOOKING_DB_HOST")
	setString(&c.Database.User, "BOOKING_DB_USER")
	setString(&c.Database.Password, "BOOKING_DB_PASSWORD")
	setString(&c.Database.DBName, "BOOKING_DB_NAME")
	setString(&c.Database.SSLMode, "BOOKING_DB_SSLMODE")
	setString(&c.Logs.Level, "BOOKING_LOG_LEVEL")
	setString(&c.Venue.Timezone, "BOOKING_VENUE_TIMEZONE")
	setString(&c.Venue.GapRule, "BOOKING_GAP_RULE")

	if err := setInt(&c.Database.Port, "BOOKING_DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Server.HTTPPort, "BOOKING_HTTP_PORT"); err != nil {
		return err
	}

	if v, ok := os.LookupEnv("BOOKING_METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BOOKING_METRICS_ENABLED=%q: %w", v, err)
		}
		c.Metrics.Enabled = enabled
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("metrics.path is required when metrics are enabled")
	}
	if _, err := c.Venue.Location(); err != nil {
		return err
	}
	for _, h := range c.Venue.DurationCatalog {
		if h <= 0 {
			return fmt.Errorf("venue.duration_catalog must contain positive hours, got %v", h)
		}
	}
	if err := c.Venue.SchedulingPolicy().Validate(); err != nil {
		return fmt.Errorf("venue: %w", err)
	}
	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс площадки. "Сегодня" и "сейчас" считаются в нем.
func (v VenueConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("venue.timezone %q: %w", v.Timezone, err)
	}
	return loc, nil
}

// SchedulingPolicy собирает политику расписания из конфигурации
func (v VenueConfig) SchedulingPolicy() scheduling.Policy {
	return scheduling.Policy{
		SlotStepMinutes:          v.SlotStepMinutes,
		TrailingWindowMinutes:    v.TrailingWindowMinutes,
		GapRule:                  scheduling.GapRule(v.GapRule),
		GapGranularityMinutes:    v.GapGranularityMinutes,
		MinIdleGapMinutes:        v.MinIdleGapMinutes,
		NextBookingBufferMinutes: v.NextBookingBufferMinutes,
		RoundingMinutes:          v.RoundingMinutes,
	}
}
