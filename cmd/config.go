package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	HTTPPort            string
	StoreDriver         string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	RedisAddr           string
	RedisPassword       string
	AMQPURL             string
	AMQPExchange        string
	FleetReportSchedule string
	SessionTTL          time.Duration
	LogLevel            slog.Level
}

// LoadConfig reads the environment, after loading envFile when it exists. Unset keys
// fall back to defaults that run the service in memory without external services.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("AMQP_EXCHANGE", "logistics.events")
	v.SetDefault("FLEET_REPORT_SCHEDULE", "0 */15 * * * *")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		HTTPPort:            v.GetString("HTTP_PORT"),
		StoreDriver:         strings.ToLower(v.GetString("STORE_DRIVER")),
		DBHost:              v.GetString("DB_HOST"),
		DBPort:              v.GetString("DB_PORT"),
		DBUser:              v.GetString("DB_USER"),
		DBPassword:          v.GetString("DB_PASSWORD"),
		DBName:              v.GetString("DB_NAME"),
		DBSslMode:           v.GetString("DB_SSLMODE"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		AMQPURL:             v.GetString("AMQP_URL"),
		AMQPExchange:        v.GetString("AMQP_EXCHANGE"),
		FleetReportSchedule: v.GetString("FLEET_REPORT_SCHEDULE"),
		SessionTTL:          v.GetDuration("SESSION_TTL"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.StoreDriver != StoreMemory && c.StoreDriver != StorePostgres {
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StorePostgres, c.StoreDriver))
	}
	if c.StoreDriver == StorePostgres && (c.DBUser == "" || c.DBName == "") {
		errs = append(errs, errors.New("DB_USER and DB_NAME are required for the postgres store"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// PostgresDSN is the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
