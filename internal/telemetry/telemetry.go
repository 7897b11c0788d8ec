// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry sets up the OpenTelemetry tracer and meter providers of
// the go-tours server and the HTTP instruments recorded by the router.
//
// Exporters are selected by name ("stdout", "otlp", "prometheus" for metrics,
// "none"). A disabled signal falls back to the no-op provider so callers never
// check for nil.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tours/internal/config"
	"github.com/MKhiriev/go-tours/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Telemetry owns the providers built from config.Telemetry.
type Telemetry struct {
	tracer trace.Tracer
	meter  metric.Meter

	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider

	// metricsHandler serves the Prometheus registry, nil for other exporters.
	metricsHandler http.Handler
}

// New builds the tracer and meter providers and installs them as the
// global otel providers.
func New(ctx context.Context, cfg config.Telemetry, version string, log *logger.Logger) (*Telemetry, error) {
	t := &Telemetry{
		tracer: tracenoop.NewTracerProvider().Tracer(cfg.ServiceName),
		meter:  metricnoop.NewMeterProvider().Meter(cfg.ServiceName),
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := newSpanExporter(ctx, cfg.TracesExporter)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	if exporter != nil {
		t.tracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(exporter),
		)
		otel.SetTracerProvider(t.tracerProvider)
		t.tracer = t.tracerProvider.Tracer(cfg.ServiceName)
	}

	reader, handler, err := newMetricReader(ctx, cfg.MetricsExporter)
	if err != nil {
		_ = t.Shutdown(ctx)
		return nil, fmt.Errorf("failed to create metrics reader: %w", err)
	}
	if reader != nil {
		t.meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(reader),
		)
		otel.SetMeterProvider(t.meterProvider)
		t.meter = t.meterProvider.Meter(cfg.ServiceName)
		t.metricsHandler = handler
	}

	log.Info().
		Str("traces", cfg.TracesExporter).
		Str("metrics", cfg.MetricsExporter).
		Msg("telemetry initialized")

	return t, nil
}

// Nop returns telemetry that records nothing.
func Nop() *Telemetry {
	return &Telemetry{
		tracer: tracenoop.NewTracerProvider().Tracer("nop"),
		meter:  metricnoop.NewMeterProvider().Meter("nop"),
	}
}

func (t *Telemetry) Tracer() trace.Tracer { return t.tracer }

func (t *Telemetry) Meter() metric.Meter { return t.meter }

// MetricsHandler returns the Prometheus scrape handler, or nil when metrics
// are not exported to Prometheus.
func (t *Telemetry) MetricsHandler() http.Handler { return t.metricsHandler }

// Shutdown flushes and stops both providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.tracerProvider != nil {
		if err := t.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if t.meterProvider != nil {
		if err := t.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}
