package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Dashboard DashboardConfig
	Alerts    AlertsConfig
	Migrate   MigrateConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MULTIVEND_APP_ENV" required:"true"`
	Port         string `envconfig:"MULTIVEND_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MULTIVEND_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MULTIVEND_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MULTIVEND_DB_DSN"`
	Driver string `envconfig:"MULTIVEND_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"MULTIVEND_DB_HOST"`
	Port     int    `envconfig:"MULTIVEND_DB_PORT" default:"5432"`
	User     string `envconfig:"MULTIVEND_DB_USER"`
	Password string `envconfig:"MULTIVEND_DB_PASSWORD"`
	Name     string `envconfig:"MULTIVEND_DB_NAME"`
	SSLMode  string `envconfig:"MULTIVEND_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MULTIVEND_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MULTIVEND_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MULTIVEND_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MULTIVEND_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a postgres DSN from discrete parts when one is not provided.
// Sqlite deployments must provide the DSN directly (file path or :memory:).
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if strings.EqualFold(d.Driver, DriverSqlite) {
		return fmt.Errorf("sqlite driver requires MULTIVEND_DB_DSN")
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("database DSN or host/user/name parts are required")
	}
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	q := dsn.Query()
	q.Set("sslmode", d.SSLMode)
	dsn.RawQuery = q.Encode()
	d.DSN = dsn.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"MULTIVEND_REDIS_URL"`
	Address      string        `envconfig:"MULTIVEND_REDIS_ADDR"`
	Password     string        `envconfig:"MULTIVEND_REDIS_PASSWORD"`
	DB           int           `envconfig:"MULTIVEND_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MULTIVEND_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MULTIVEND_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MULTIVEND_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MULTIVEND_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MULTIVEND_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MULTIVEND_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MULTIVEND_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MULTIVEND_JWT_EXPIRATION_MINUTES" default:"60"`
}

type DashboardConfig struct {
	CacheEnabled   bool          `envconfig:"MULTIVEND_DASHBOARD_CACHE_ENABLED" default:"true"`
	CacheTTL       time.Duration `envconfig:"MULTIVEND_DASHBOARD_CACHE_TTL" default:"60s"`
	SectionTimeout time.Duration `envconfig:"MULTIVEND_DASHBOARD_SECTION_TIMEOUT" default:"10s"`
}

type AlertsConfig struct {
	LowStockThreshold int `envconfig:"MULTIVEND_LOW_STOCK_THRESHOLD" default:"10"`
	LowStockLimit     int `envconfig:"MULTIVEND_LOW_STOCK_LIMIT" default:"20"`
	PendingOrderLimit int `envconfig:"MULTIVEND_PENDING_ORDER_LIMIT" default:"20"`
}

type MigrateConfig struct {
	AutoRunDev bool   `envconfig:"MULTIVEND_MIGRATE_AUTO_DEV" default:"true"`
	Dir        string `envconfig:"MULTIVEND_MIGRATE_DIR" default:"migrations"`
}
