package models

import (
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	StatusHealthy = "healthy"
	HelloMessage  = "Hello from Go on EKS!"
	Unknown       = "unknown"
)

// NewHealthResponse returns a healthy HealthResponse stamped with now.
func NewHealthResponse(version, environment string, now time.Time) HealthResponse {
	return HealthResponse{
		Status:      StatusHealthy,
		Version:     version,
		Timestamp:   now.UTC().Format(time.RFC3339Nano),
		Environment: environment,
	}
}

// NewApiResponse returns a greeting with a fresh v4 UUID and the pod
// metadata read from the environment at call time.
func NewApiResponse() ApiResponse {
	return ApiResponse{
		ID:      uuid.New().String(),
		Message: HelloMessage,
		Data: map[string]string{
			"hostname":  envOr("HOSTNAME", Unknown),
			"pod_ip":    envOr("POD_IP", Unknown),
			"node_name": envOr("NODE_NAME", Unknown),
		},
	}
}

// envOr falls back only when key is unset; an empty value is returned as is.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
