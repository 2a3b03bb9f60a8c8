package models

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status" example:"healthy" swaggertype:"string"`
	Version     string `json:"version" example:"0.1.0" swaggertype:"string"`
	Timestamp   string `json:"timestamp" example:"2025-06-04T00:15:30Z" swaggertype:"string"`
	Environment string `json:"environment" example:"development" swaggertype:"string"`
}

// ApiResponse is the body of GET /api/hello. Data carries the hostname,
// pod_ip and node_name keys.
type ApiResponse struct {
	ID      string            `json:"id" example:"550e8400-e29b-41d4-a716-446655440000" swaggertype:"string"`
	Message string            `json:"message" example:"Hello from Go on EKS!" swaggertype:"string"`
	Data    map[string]string `json:"data"`
}
