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
	DefaultPort            = 8080
	DefaultEnvironment     = "development"
	DefaultShutdownTimeout = 5 * time.Second
)

var (
	ErrInvalidPort    = errors.New("PORT must be a valid number")
	ErrInvalidSetting = errors.New("invalid setting")
)

// Config is resolved once at startup and handed to the router by value.
type Config struct {
	Port            uint16
	Environment     string
	LogLevel        string
	OTLPEndpoint    string
	SwaggerEnabled  bool
	ShutdownTimeout time.Duration
}

// Addr is the listen address on all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func Load() (Config, error) {
	port, err := loadPort()
	if err != nil {
		return Config{}, err
	}

	environment, ok := os.LookupEnv("ENVIRONMENT")
	if !ok {
		environment = DefaultEnvironment
	}

	swagger, err := loadBool("SWAGGER_ENABLED")
	if err != nil {
		return Config{}, err
	}

	shutdownTimeout, err := loadDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:            port,
		Environment:     environment,
		LogLevel:        os.Getenv("LOG_LEVEL"),
		OTLPEndpoint:    os.Getenv("OTLP_ENDPOINT"),
		SwaggerEnabled:  swagger,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func loadPort() (uint16, error) {
	raw, ok := os.LookupEnv("PORT")
	if !ok {
		return DefaultPort, nil
	}

	// A single leading sign is accepted, as in "+8080".
	port, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidPort, raw, err)
	}
	return uint16(port), nil
}

func loadBool(key string) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, key, raw)
	}
	return v, nil
}

func loadDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, key, raw)
	}
	return d, nil
}
