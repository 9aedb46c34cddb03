package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fooddelivery/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv                 string
	HTTPPort               string
	GRPCPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaBrokers           []string
	KafkaOrderChangedTopic string
	JWTSecret              string
	RateLimitRPS           float64
	RateLimitBurst         int
	DispatchEnabled        bool
	DispatchSchedule       string
	HealthProbeSchedule    string
}

// LoadConfig reads the environment after loading an optional .env file.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	rps, rpsErr := floatVariable("RATE_LIMIT_RPS", 20)
	burst, burstErr := intVariable("RATE_LIMIT_BURST", 40)
	dispatch, dispatchErr := boolVariable("DISPATCH_ENABLED", false)
	if err := errors.Join(rpsErr, burstErr, dispatchErr); err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 variable("APP_ENV", "development"),
		HTTPPort:               variable("HTTP_PORT", "8080"),
		GRPCPort:               variable("GRPC_PORT", "9090"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 variable("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              variable("DB_SSLMODE", "disable"),
		KafkaBrokers:           listVariable("KAFKA_BROKERS"),
		KafkaOrderChangedTopic: variable("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		RateLimitRPS:           rps,
		RateLimitBurst:         burst,
		DispatchEnabled:        dispatch,
		DispatchSchedule:       variable("DISPATCH_SCHEDULE", "@every 10s"),
		HealthProbeSchedule:    variable("HEALTH_PROBE_SCHEDULE", "@every 15s"),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var missing []error
	for name, value := range map[string]string{
		"DB_HOST": c.DBHost,
		"DB_USER": c.DBUser,
		"DB_NAME": c.DBName,
	} {
		if value == "" {
			missing = append(missing, errs.NewValueIsRequiredError(name))
		}
	}
	return errors.Join(missing...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func variable(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func listVariable(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func floatVariable(key string, fallback float64) (float64, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}

func intVariable(key string, fallback int) (int, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}

func boolVariable(key string, fallback bool) (bool, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return v, nil
}
