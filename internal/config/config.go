package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

var (
	ErrMissingJWTSecret   = errors.New("missing JWT_SECRET")
	ErrUnknownStorage     = errors.New("STORAGE_DRIVER must be dynamodb or memory")
	ErrInvalidGatewayWait = errors.New("PAYMENT_GATEWAY_TIMEOUT must be positive")
)

// Config is read once at startup from the environment (.env is loaded by main).
type Config struct {
	Port          string
	GinMode       string
	StorageDriver string
	JWTSecret     string
	DynamoDB      DynamoDBConfig
	Payment       PaymentConfig
	Redis         RedisConfig
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint targets DynamoDB Local when set, e.g. http://dynamodb:8000.
	Endpoint string
}

type PaymentConfig struct {
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string
	Currency              string
	GatewayTimeout        time.Duration
	GatewayMock           bool
}

// RedisConfig enables webhook event de-duplication when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	DedupTTL time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getenvDefault("PORT", "8080"),
		GinMode:       os.Getenv("GIN_MODE"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Payment: PaymentConfig{
			RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
			RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
			RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
			Currency:              strings.ToUpper(getenvDefault("PAYMENT_CURRENCY", "INR")),
			GatewayMock:           isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	if cfg.StorageDriver != StorageDynamoDB && cfg.StorageDriver != StorageMemory {
		return Config{}, fmt.Errorf("%w: got %q", ErrUnknownStorage, cfg.StorageDriver)
	}

	var err error
	if cfg.Payment.GatewayTimeout, err = durationEnv("PAYMENT_GATEWAY_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Payment.GatewayTimeout <= 0 {
		return Config{}, ErrInvalidGatewayWait
	}
	if cfg.Redis.DedupTTL, err = durationEnv("WEBHOOK_DEDUP_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if cfg.Redis.DB, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("REDIS_DB: %w", err)
		}
	}
	return cfg, nil
}

// durationEnv accepts Go durations ("15s") and bare seconds ("15").
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
