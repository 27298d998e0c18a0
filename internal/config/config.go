package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружаемая из TOML-файла
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	NotifyService NotifyServiceConfig `toml:"notify_service"`
	Pricing       PricingConfig       `toml:"pricing"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки кэша доступных слотов
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	SlotsTTL int    `toml:"slots_ttl"` // TTL кэша доступности в секундах
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotifyServiceConfig настройки клиента сервиса уведомлений
type NotifyServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// PricingConfig политика генерации слотов
// Слоты генерируются по часу на интервале [open_hour, close_hour)
// Цена слота = базовая цена площадки + надбавка ценовой полосы
type PricingConfig struct {
	OpenHour  int         `toml:"open_hour"`
	CloseHour int         `toml:"close_hour"`
	Bands     []BandEntry `toml:"bands"`

	// Базовая цена для advisory-слотов, когда площадку не удалось прочитать из БД
	FallbackBasePrice float64 `toml:"fallback_base_price"`
}

// BandEntry одна ценовая полоса: часы [from, to) и надбавка к базовой цене
type BandEntry struct {
	FromHour int     `toml:"from_hour"`
	ToHour   int     `toml:"to_hour"`
	Delta    float64 `toml:"delta"`
}

// Load загружает конфигурацию из TOML-файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.SlotsTTL == 0 {
		c.Redis.SlotsTTL = 30
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "turf-booking-service"
	}

	if c.NotifyService.Timeout == 0 {
		c.NotifyService.Timeout = 5
	}

	// Дефолтная политика: полные сутки, ценовые полосы по времени дня
	if c.Pricing.CloseHour == 0 {
		c.Pricing.OpenHour = 0
		c.Pricing.CloseHour = 24
	}
	if c.Pricing.FallbackBasePrice == 0 {
		c.Pricing.FallbackBasePrice = 500
	}
	if len(c.Pricing.Bands) == 0 {
		c.Pricing.Bands = []BandEntry{
			{FromHour: 0, ToHour: 6, Delta: -100},
			{FromHour: 6, ToHour: 12, Delta: 0},
			{FromHour: 12, ToHour: 17, Delta: 100},
			{FromHour: 17, ToHour: 22, Delta: 200},
			{FromHour: 22, ToHour: 24, Delta: -100},
		}
	}
}

func (c *Config) validate() error {
	if c.Pricing.OpenHour < 0 || c.Pricing.CloseHour > 24 || c.Pricing.OpenHour >= c.Pricing.CloseHour {
		return fmt.Errorf("config: invalid pricing horizon [%d, %d)", c.Pricing.OpenHour, c.Pricing.CloseHour)
	}

	// Полосы должны покрывать горизонт без разрывов и пересечений
	covered := c.Pricing.OpenHour
	for _, band := range c.Pricing.Bands {
		if band.ToHour <= band.FromHour {
			return fmt.Errorf("config: invalid pricing band [%d, %d)", band.FromHour, band.ToHour)
		}
		if band.ToHour <= c.Pricing.OpenHour || band.FromHour >= c.Pricing.CloseHour {
			continue
		}
		from := band.FromHour
		if from < c.Pricing.OpenHour {
			from = c.Pricing.OpenHour
		}
		to := band.ToHour
		if to > c.Pricing.CloseHour {
			to = c.Pricing.CloseHour
		}
		if from < covered {
			return fmt.Errorf("config: pricing bands overlap at hour %d", from)
		}
		if from > covered {
			return fmt.Errorf("config: pricing bands leave a gap at hour %d", covered)
		}
		covered = to
	}
	if covered < c.Pricing.CloseHour {
		return fmt.Errorf("config: pricing bands do not cover horizon up to hour %d", c.Pricing.CloseHour)
	}

	return nil
}
