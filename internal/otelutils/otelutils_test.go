package otelutils

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestInitOTelNoEndpoint(t *testing.T) {
	metrics, err := InitOTel(OTelConfig{})
	if err != nil || metrics != nil {
		t.Fatalf("expected nil metrics and no error")
	}
	if mp != nil {
		t.Fatalf("expected no meter provider")
	}
}

func TestInitOTelWithEndpoint(t *testing.T) {
	m, err := InitOTel(OTelConfig{ServiceName: "s", ServiceVersion: "1", Environment: "t", OTLPEndpoint: "localhost:4317"})
	if err != nil || m == nil {
		t.Fatalf("unexpected init failure: %v", err)
	}
	if mp == nil {
		t.Fatalf("meter provider not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	Shutdown(ctx)
}

func TestRecordNilIsNoop(t *testing.T) {
	var m *HTTPMetrics
	m.Record(context.Background(), "GET", "/health", 200, time.Millisecond)
}

func TestRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	requests, err := meter.Int64Counter("http_server_requests")
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	duration, err := meter.Float64Histogram(durationInstrument)
	if err != nil {
		t.Fatalf("histogram: %v", err)
	}
	m := &HTTPMetrics{Requests: requests, Duration: duration}

	ctx := context.Background()
	m.Record(ctx, "GET", "/health", 200, 3*time.Millisecond)
	m.Record(ctx, "GET", "/health", 200, time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok && md.Name == "http_server_requests" {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	if total != 2 {
		t.Fatalf("expected 2 recorded requests, got %d", total)
	}
}
