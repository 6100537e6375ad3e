package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Поддерживаемые движки хранилища
const (
	StorageEngineMemory   = "memory"
	StorageEnginePostgres = "postgres"
)

var (
	// ErrLoadConfig возвращается при ошибке чтения конфигурационного файла
	ErrLoadConfig = errors.New("config: failed to load file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Auth     AuthConfig     `toml:"auth"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор движка хранилища
type StorageConfig struct {
	Engine string `toml:"engine"` // "memory" или "postgres"
}

// DatabaseConfig настройки подключения к PostgreSQL (для engine = "postgres")
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

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// BookingConfig настройки рабочего дня салона
type BookingConfig struct {
	OpenTime            string `toml:"open_time"`             // например, "9:00 AM"
	CloseTime           string `toml:"close_time"`            // например, "6:00 PM"
	SlotDurationMinutes int    `toml:"slot_duration_minutes"` // шаг сетки слотов
}

// AuthConfig настройки доступа к административным маршрутам
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// Load читает конфигурацию из TOML-файла и подставляет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BusinessHours конвертирует настройки рабочего дня в доменную модель
func (c *Config) BusinessHours() (domain.BusinessHours, error) {
	open, err := types.NewTimeStringFromString(c.Booking.OpenTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("%w: booking.open_time: %v", ErrInvalidConfig, err)
	}

	closeTime, err := types.NewTimeStringFromString(c.Booking.CloseTime)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("%w: booking.close_time: %v", ErrInvalidConfig, err)
	}

	return domain.BusinessHours{
		OpenTime:            open,
		CloseTime:           closeTime,
		SlotDurationMinutes: c.Booking.SlotDurationMinutes,
	}, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "smc-salonservice",
		},
		Storage: StorageConfig{
			Engine: StorageEngineMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			OpenTime:            domain.DefaultOpenTime.String(),
			CloseTime:           domain.DefaultCloseTime.String(),
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Storage.Engine != StorageEngineMemory && c.Storage.Engine != StorageEnginePostgres {
		return fmt.Errorf("%w: storage.engine must be %q or %q, got %q",
			ErrInvalidConfig, StorageEngineMemory, StorageEnginePostgres, c.Storage.Engine)
	}

	if c.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be positive", ErrInvalidConfig)
	}

	if _, err := c.BusinessHours(); err != nil {
		return err
	}

	return nil
}
