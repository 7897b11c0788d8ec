// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNew_Disabled(t *testing.T) {
	tel, err := New(context.Background(), config.Telemetry{
		ServiceName:     "go-tours",
		TracesExporter:  ExporterNone,
		MetricsExporter: ExporterNone,
	}, "test", logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, tel.Tracer())
	assert.NotNil(t, tel.Meter())
	assert.Nil(t, tel.MetricsHandler())
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestNew_UnknownExporters(t *testing.T) {
	_, err := New(context.Background(), config.Telemetry{ServiceName: "go-tours", TracesExporter: "zipkin"}, "test", logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownExporter)

	_, err = New(context.Background(), config.Telemetry{ServiceName: "go-tours", MetricsExporter: "statsd"}, "test", logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownExporter)
}

func TestNew_OTLPRequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	_, err := New(context.Background(), config.Telemetry{ServiceName: "go-tours", TracesExporter: ExporterOTLP}, "test", logger.Nop())
	assert.ErrorIs(t, err, ErrOTLPEndpointMissing)

	_, err = New(context.Background(), config.Telemetry{ServiceName: "go-tours", MetricsExporter: ExporterOTLP}, "test", logger.Nop())
	assert.ErrorIs(t, err, ErrOTLPEndpointMissing)
}

func TestNew_PrometheusServesRecordedMetrics(t *testing.T) {
	tel, err := New(context.Background(), config.Telemetry{
		ServiceName:     "go-tours",
		MetricsExporter: ExporterPrometheus,
	}, "test", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })
	require.NotNil(t, tel.MetricsHandler())

	m, err := NewHTTPMetrics(tel.Meter())
	require.NoError(t, err)
	m.Record(context.Background(), http.MethodGet, "/api/v1/tours", http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	tel.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), "http_server_requests")
	assert.Contains(t, string(body), `http_route="/api/v1/tours"`)
}

func TestNop(t *testing.T) {
	tel := Nop()

	assert.NotNil(t, tel.Tracer())
	assert.Nil(t, tel.MetricsHandler())
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestHTTPMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := NewHTTPMetrics(mp.Meter("test"))
	require.NoError(t, err)

	m.Record(context.Background(), http.MethodPost, "/api/v1/tours", http.StatusCreated, 150*time.Millisecond)
	m.Record(context.Background(), http.MethodPost, "/api/v1/tours", http.StatusCreated, 50*time.Millisecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	requests := findMetric(rm, "http.server.requests")
	require.NotNil(t, requests)
	sum, ok := requests.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)

	duration := findMetric(rm, "http.server.duration")
	require.NotNil(t, duration)
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.InDelta(t, 0.2, hist.DataPoints[0].Sum, 1e-9)
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}
