package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	RabbitMQ    RabbitMQConfig
	Batch       BatchConfig
}

type ServerConfig struct {
	Port string
	// InternalURL is how in-process workers reach this service's internal routes.
	InternalURL  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// LockWaitTimeout bounds how long a transaction waits on a row lock.
	LockWaitTimeout time.Duration
}

type RedisConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	PoolSize   int
	Namespace  string
	CatalogTTL time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	InternalAPIKey string
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Exchange string
	// AuditQueue receives stock movement events for the reconcile consumer.
	AuditQueue      string
	ConsumerEnabled bool
}

type BatchConfig struct {
	// SequenceRetries is how often batch number generation restarts its transaction after a deadlock.
	SequenceRetries int
}

// Load reads configuration from the environment, after loading .env when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			InternalURL:  getEnv("SERVER_INTERNAL_URL", "http://localhost:8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "drims"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			LockWaitTimeout: getDuration("DB_LOCK_WAIT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Enabled:    getBool("REDIS_ENABLED", true),
			Host:       getEnv("REDIS_HOST", "localhost"),
			Port:       getInt("REDIS_PORT", 6379),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getInt("REDIS_DB", 0),
			PoolSize:   getInt("REDIS_POOL_SIZE", 10),
			Namespace:  getEnv("REDIS_NAMESPACE", "drims"),
			CatalogTTL: getDuration("REDIS_CATALOG_TTL", 10*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "secret"),
			JWTExpiration:  getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getDuration("SESSION_EXP_TIME", 24*time.Hour),
			InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:         getBool("RABBITMQ_ENABLED", false),
			Host:            getEnv("RABBITMQ_HOST", "localhost"),
			Port:            getInt("RABBITMQ_PORT", 5672),
			User:            getEnv("RABBITMQ_USER", "guest"),
			Password:        getEnv("RABBITMQ_PASSWORD", "guest"),
			Exchange:        getEnv("RABBITMQ_EXCHANGE", "drims_events"),
			AuditQueue:      getEnv("RABBITMQ_AUDIT_QUEUE", "drims_stock_audit"),
			ConsumerEnabled: getBool("RABBITMQ_CONSUMER_ENABLED", false),
		},
		Batch: BatchConfig{
			SequenceRetries: getInt("BATCH_SEQUENCE_RETRIES", 3),
		},
	}
}

// GetDSN builds the MySQL DSN. parseTime is required for DATETIME columns.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
