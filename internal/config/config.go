package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

var confirmationPrefixRe = regexp.MustCompile(`^[A-Z0-9]+$`)

const (
	OracleHash   = "hash"
	OracleStore  = "store"
	OracleHybrid = "hybrid"

	CatalogSourcePostgres = "postgres"
	CatalogSourceTurso    = "turso"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Pricing   PricingConfig   `toml:"pricing"`
	Booking   BookingConfig   `toml:"booking"`
	Catalog   CatalogConfig   `toml:"catalog"`
	Redis     RedisConfig     `toml:"redis"`
	Turso     TursoConfig     `toml:"turso"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

type PricingConfig struct {
	LaborRate          float64 `toml:"labor_rate"`
	TaxRate            float64 `toml:"tax_rate"`
	RushRate           float64 `toml:"rush_rate"`
	HoursPerWorkDay    float64 `toml:"hours_per_work_day"`
	RushBufferDays     int     `toml:"rush_buffer_days"`
	StandardBufferDays int     `toml:"standard_buffer_days"`
	ValidityDays       int     `toml:"validity_days"`
	Currency           string  `toml:"currency"`
}

type BookingConfig struct {
	Oracle             string `toml:"oracle"` // hash | store | hybrid
	InitialStatus      string `toml:"initial_status"`
	ConfirmationPrefix string `toml:"confirmation_prefix"`
}

type CatalogConfig struct {
	Enabled  bool   `toml:"enabled"`
	Source   string `toml:"source"`    // postgres | turso
	CacheTTL int    `toml:"cache_ttl"` // секунды, 0 отключает кеш
}

// CacheTTLDuration TTL кеша каталога
func (c CatalogConfig) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type TursoConfig struct {
	URL       string `toml:"url"`
	AuthToken string `toml:"auth_token"`
	Timeout   int    `toml:"timeout"` // секунды
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	VisitorTTL        int     `toml:"visitor_ttl"` // секунды
}

// Load читает конфигурацию из TOML файла, заполняет значения по умолчанию,
// применяет переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация без файла: только hash-оракул, без БД, Redis и каталога
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
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
			ServiceName: "configurator-service",
		},
		Pricing: PricingConfig{
			LaborRate:          350,
			TaxRate:            0.20,
			RushRate:           0.25,
			HoursPerWorkDay:    8,
			RushBufferDays:     2,
			StandardBufferDays: 5,
			ValidityDays:       30,
			Currency:           "MAD",
		},
		Booking: BookingConfig{
			Oracle:             OracleHash,
			InitialStatus:      "confirmed",
			ConfirmationPrefix: "AAW",
		},
		Catalog: CatalogConfig{
			Source:   CatalogSourcePostgres,
			CacheTTL: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Turso: TursoConfig{
			Timeout: 5,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
			VisitorTTL:        600,
		},
	}
}

// Секреты не хранятся в файле
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("TURSO_DATABASE_URL"); v != "" {
		c.Turso.URL = v
	}
	if v := os.Getenv("TURSO_AUTH_TOKEN"); v != "" {
		c.Turso.AuthToken = v
	}
}

// Validate проверяет согласованность секций
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	p := c.Pricing
	if p.LaborRate < 0 || p.TaxRate < 0 || p.RushRate < 0 {
		return fmt.Errorf("%w: pricing rates must not be negative", ErrInvalidConfig)
	}
	if p.HoursPerWorkDay <= 0 {
		return fmt.Errorf("%w: pricing.hours_per_work_day must be positive", ErrInvalidConfig)
	}
	if p.RushBufferDays < 0 || p.StandardBufferDays < 0 || p.ValidityDays < 0 {
		return fmt.Errorf("%w: pricing day counts must not be negative", ErrInvalidConfig)
	}
	if p.Currency == "" {
		return fmt.Errorf("%w: pricing.currency is required", ErrInvalidConfig)
	}

	switch c.Booking.Oracle {
	case OracleHash:
		// hash-оракул не видит сохраненные бронирования, один слот записался бы многократно
		if c.Database.Enabled {
			return fmt.Errorf("%w: booking.oracle %q ignores stored bookings, use %q or %q with database.enabled",
				ErrInvalidConfig, c.Booking.Oracle, OracleStore, OracleHybrid)
		}
	case OracleStore, OracleHybrid:
		if !c.Database.Enabled {
			return fmt.Errorf("%w: booking.oracle %q requires database.enabled", ErrInvalidConfig, c.Booking.Oracle)
		}
	default:
		return fmt.Errorf("%w: unknown booking.oracle %q", ErrInvalidConfig, c.Booking.Oracle)
	}

	switch c.Booking.InitialStatus {
	case "pending", "confirmed":
	default:
		return fmt.Errorf("%w: booking.initial_status must be pending or confirmed, got %q",
			ErrInvalidConfig, c.Booking.InitialStatus)
	}
	if !confirmationPrefixRe.MatchString(c.Booking.ConfirmationPrefix) {
		// коды ищутся в верхнем регистре
		return fmt.Errorf("%w: booking.confirmation_prefix must be uppercase letters or digits, got %q",
			ErrInvalidConfig, c.Booking.ConfirmationPrefix)
	}

	if c.Catalog.Enabled {
		switch c.Catalog.Source {
		case CatalogSourcePostgres:
			if !c.Database.Enabled {
				return fmt.Errorf("%w: catalog.source postgres requires database.enabled", ErrInvalidConfig)
			}
		case CatalogSourceTurso:
			if c.Turso.URL == "" {
				return fmt.Errorf("%w: catalog.source turso requires turso.url or TURSO_DATABASE_URL", ErrInvalidConfig)
			}
		default:
			return fmt.Errorf("%w: unknown catalog.source %q", ErrInvalidConfig, c.Catalog.Source)
		}
		if c.Catalog.CacheTTL < 0 {
			return fmt.Errorf("%w: catalog.cache_ttl must not be negative", ErrInvalidConfig)
		}
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	return nil
}
