package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// dotEnvFile файл с переменными окружения в рабочей директории
const dotEnvFile = ".env"

var (
	// ErrInvalidConfig возвращается, когда итоговая конфигурация не проходит проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Session  SessionConfig  `toml:"session"`
	Redis    RedisConfig    `toml:"redis"`
	Security SecurityConfig `toml:"security"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры хранилища.
// Непустой URL выбирает PostgreSQL, иначе используется SQLite-файл по Path.
type DatabaseConfig struct {
	URL             string `toml:"url" env:"DATABASE_URL"`
	Path            string `toml:"path" env:"DATABASE_PATH"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// IsHosted true, если задана строка подключения к внешнему серверу
func (c DatabaseConfig) IsHosted() bool {
	return strings.TrimSpace(c.URL) != ""
}

// SessionConfig параметры cookie сессии
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	TTLMinutes int    `toml:"ttl_minutes" env:"SESSION_TTL_MINUTES"`
	Secure     bool   `toml:"secure" env:"SESSION_COOKIE_SECURE"`
}

// TTL время жизни сессии
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// RedisConfig хранилище сессий. Пустой Addr - сессии в памяти процесса.
type RedisConfig struct {
	Addr      string `toml:"addr" env:"REDIS_ADDR"`
	Password  string `toml:"password" env:"REDIS_PASSWORD"`
	DB        int    `toml:"db" env:"REDIS_DB"`
	KeyPrefix string `toml:"key_prefix"`
}

// Enabled true, если задан адрес Redis
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// SecurityConfig параметры хеширования паролей
type SecurityConfig struct {
	BcryptCost int `toml:"bcrypt_cost" env:"BCRYPT_COST"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig список e-mail администраторов, которым доступен дамп базы
type AdminConfig struct {
	Emails []string `toml:"emails" env:"ADMIN_EMAILS" env-separator:","`
}

// Load читает конфигурацию:
// 1. TOML-файл по path (если path не пустой)
// 2. .env файл в рабочей директории (если есть)
// 3. переменные окружения поверх значений из файла
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv подгружает переменные из файла. Отсутствие файла не ошибка, битый файл - ошибка.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
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

	if c.Database.Path == "" {
		c.Database.Path = "carwash.db"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Session.CookieName == "" {
		c.Session.CookieName = "carwash_session"
	}
	if c.Session.TTLMinutes == 0 {
		c.Session.TTLMinutes = 24 * 60
	}

	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "carwash:session:"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc_carwash"
	}

	emails := make([]string, 0, len(c.Admin.Emails))
	for _, e := range c.Admin.Emails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			emails = append(emails, e)
		}
	}
	c.Admin.Emails = emails
}

// Validate проверяет итоговые значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: negative database pool size", ErrInvalidConfig)
	}
	if c.Session.TTLMinutes < 0 {
		return fmt.Errorf("%w: session.ttl_minutes=%d", ErrInvalidConfig, c.Session.TTLMinutes)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	return nil
}
