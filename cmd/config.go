package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"warehouse/internal/pkg/errs"
)

const (
	defaultHTTPPort         = "8080"
	defaultRabbitMQExchange = "warehouse.events"
	defaultOutboxBatchSize  = 100
	defaultLogLevel         = "info"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	RabbitMQURL        string
	RabbitMQExchange   string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	OutboxBatchSize    int
	NotificationAckTTL time.Duration
	LogLevel           string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after
// the optional .env file was loaded. Unset optional keys fall back to defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:         valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:           getenv("DB_HOST"),
		DBPort:           getenv("DB_PORT"),
		DBUser:           getenv("DB_USER"),
		DBPassword:       getenv("DB_PASSWORD"),
		DBName:           getenv("DB_NAME"),
		DBSslMode:        valueOr(getenv("DB_SSLMODE"), "disable"),
		RabbitMQURL:      getenv("RABBITMQ_URL"),
		RabbitMQExchange: valueOr(getenv("RABBITMQ_EXCHANGE"), defaultRabbitMQExchange),
		RedisAddr:        getenv("REDIS_ADDR"),
		RedisPassword:    getenv("REDIS_PASSWORD"),
		OutboxBatchSize:  defaultOutboxBatchSize,
		LogLevel:         valueOr(getenv("LOG_LEVEL"), defaultLogLevel),
	}

	var err error
	if v := getenv("REDIS_DB"); v != "" {
		if cfg.RedisDB, err = strconv.Atoi(v); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("REDIS_DB", err)
		}
	}
	if v := getenv("OUTBOX_BATCH_SIZE"); v != "" {
		if cfg.OutboxBatchSize, err = strconv.Atoi(v); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("OUTBOX_BATCH_SIZE", err)
		}
	}
	if v := getenv("NOTIFICATION_ACK_TTL"); v != "" {
		if cfg.NotificationAckTTL, err = time.ParseDuration(v); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("NOTIFICATION_ACK_TTL", err)
		}
	}

	if err = cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var err error
	for key, value := range map[string]string{
		"DB_HOST":      c.DBHost,
		"DB_PORT":      c.DBPort,
		"DB_USER":      c.DBUser,
		"DB_NAME":      c.DBName,
		"RABBITMQ_URL": c.RabbitMQURL,
		"REDIS_ADDR":   c.RedisAddr,
	} {
		if value == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError(key))
		}
	}
	return err
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
