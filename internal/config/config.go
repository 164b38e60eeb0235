package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/avlasov/venue-booking-service/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// TelegramConfig настройки доставки уведомлений через Telegram
type TelegramConfig struct {
	Enabled             bool   `toml:"enabled"`
	BotToken            string `toml:"bot_token"`
	NotificationsChatID int64  `toml:"notifications_chat_id"`
}

// BookingConfig параметры площадки
type BookingConfig struct {
	MaxCapacity int `toml:"max_capacity"`

	// Площадки, для которых действует совокупная проверка вместимости.
	// Бронирования на остальных площадках могут пересекаться без ограничений.
	PlacesWithCapacityCheck []string `toml:"places_with_capacity_check"`

	CalendarWindowDays int `toml:"calendar_window_days"`
	ExportWindowDays   int `toml:"export_window_days"`
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if cfg.Telegram.Enabled && cfg.Telegram.BotToken == "" {
		return nil, fmt.Errorf("config: telegram is enabled but bot_token is empty")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Booking.MaxCapacity == 0 {
		c.Booking.MaxCapacity = domain.DefaultMaxCapacity
	}
	if c.Booking.CalendarWindowDays == 0 {
		c.Booking.CalendarWindowDays = domain.DefaultCalendarWindowDays
	}
	if c.Booking.ExportWindowDays == 0 {
		c.Booking.ExportWindowDays = domain.DefaultExportWindowDays
	}
}
