// Package exposition renders the fixed body served on /metrics.
package exposition

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// RequestsTotal is the constant value reported for http_requests_total.
// Nothing increments it.
const RequestsTotal = 42

// Render builds the placeholder exposition text once. The result does not
// change between calls and is safe to share across requests.
func Render() ([]byte, error) {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests",
	})
	requests.Add(RequestsTotal)

	if err := reg.Register(requests); err != nil {
		return nil, fmt.Errorf("register placeholder counter: %w", err)
	}

	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather placeholder metrics: %w", err)
	}

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return nil, fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return buf.Bytes(), nil
}

// MustRender is Render for package-level initialisation.
func MustRender() []byte {
	body, err := Render()
	if err != nil {
		panic(err)
	}
	return body
}
