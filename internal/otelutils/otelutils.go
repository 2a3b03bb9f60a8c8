package otelutils

import (
	"context"
	"fmt"
	"time"

	"eks-go-app/internal/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

const durationInstrument = "http_server_duration"

// HTTPMetrics holds the instruments recorded for every served request.
type HTTPMetrics struct {
	Requests metric.Int64Counter
	Duration metric.Float64Histogram
}

// OTelConfig configures the OpenTelemetry SDK.
type OTelConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
}

var mp *sdkmetric.MeterProvider

// InitOTel sets up the meter provider and exporter. With no OTLPEndpoint
// telemetry is disabled and it returns nil, nil.
func InitOTel(config OTelConfig) (*HTTPMetrics, error) {
	if config.OTLPEndpoint == "" {
		return nil, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			semconv.DeploymentEnvironment(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	ctx := context.Background()
	exp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(config.OTLPEndpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exp,
				sdkmetric.WithInterval(10*time.Second),
				sdkmetric.WithTimeout(5*time.Second),
			),
		),
		sdkmetric.WithView(
			sdkmetric.NewView(
				sdkmetric.Instrument{
					Name: durationInstrument,
					Kind: sdkmetric.InstrumentKindHistogram,
				},
				sdkmetric.Stream{
					Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
						Boundaries: []float64{
							0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000,
						},
					},
				},
			),
		),
	)

	meter := provider.Meter(config.ServiceName)

	requests, err := meter.Int64Counter(
		"http_server_requests",
		metric.WithDescription("Number of HTTP requests served"),
		metric.WithUnit("{requests}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		durationInstrument,
		metric.WithDescription("Time spent serving HTTP requests"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	mp = provider
	otel.SetMeterProvider(mp)

	logger.Info("opentelemetry initialised", "endpoint", config.OTLPEndpoint)
	return &HTTPMetrics{Requests: requests, Duration: duration}, nil
}

// Record adds one served request. A nil receiver is a no-op so callers can
// record unconditionally when telemetry is disabled.
func (m *HTTPMetrics) Record(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	m.Requests.Add(ctx, 1, attrs)
	m.Duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
}

// Shutdown flushes and stops the meter provider.
func Shutdown(ctx context.Context) {
	if mp == nil {
		return
	}
	if err := mp.Shutdown(ctx); err != nil {
		logger.Warn("meter provider shutdown failed", "error", err)
	}
	mp = nil
}
