package config

import (
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RabbitMQConfig struct {
	Enabled    bool
	URL        string
	MaxRetries int
	RetryDelay time.Duration
	Exchange   ExchangeConfig
}

type ExchangeConfig struct {
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type HTTPConfig struct {
	Port           string
	BindInterface  string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
	Level        string
}

type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	RabbitMQ  RabbitMQConfig
	HTTP      HTTPConfig
	Logger    LoggerConfig
}

// defaultSQLiteDSN points at a file next to the binary. WAL plus a busy
// timeout lets pooled connections write without SQLITE_BUSY failures.
const defaultSQLiteDSN = "database.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Database: DatabaseConfig{
			Driver:          getStringEnv("DATABASE_DRIVER", DriverSQLite),
			DSN:             getStringEnv("DATABASE_DSN", defaultSQLiteDSN),
			MaxOpenConns:    getIntEnv("DATABASE_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getIntEnv("DATABASE_CONN_MAX_LIFETIME", 30)) * time.Minute,
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Requests: getIntEnv("RATE_LIMIT_REQUESTS", 100),
			Window:   time.Duration(getIntEnv("RATE_LIMIT_WINDOW", 60)) * time.Second,
		},
		HTTP: HTTPConfig{
			Port:           getStringEnv("HTTP_PORT", "8080"),
			BindInterface:  getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
			AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:    getBoolEnv("RABBITMQ_ENABLED", false),
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: time.Duration(getIntEnv("RABBITMQ_RETRY_DELAY", 1)) * time.Second,
			Exchange: ExchangeConfig{
				Name:       getStringEnv("RABBITMQ_EXCHANGE_NAME", "exchange.product"),
				Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "topic"),
				Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
				AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "ecommerce"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
			Level:        getStringEnv("LOG_LEVEL", "info"),
		},
	}
}
