// Package otel configures OpenTelemetry tracing for service commands.
package otel

import (
	"context"
	"fmt"
	"strings"

	"github.com/developerdao/schoolofcode/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	envPrefix = "SCHOOL_OF_CODE_OTEL_"
	// EnvEndpoint names the OTLP HTTP collector URL.
	EnvEndpoint = envPrefix + "ENDPOINT"
	// EnvEnabled switches tracing off when set to "false".
	EnvEnabled = envPrefix + "ENABLED"

	// ServiceNamespace groups every School of Code service in trace backends.
	ServiceNamespace = "developerdao"
)

// Settings holds the tracing switches read from the environment.
type Settings struct {
	Endpoint string `env:"ENDPOINT"`
	Enabled  string `env:"ENABLED"`
}

// Active reports whether spans should be exported.
func (s Settings) Active() bool {
	if strings.EqualFold(strings.TrimSpace(s.Enabled), "false") {
		return false
	}
	return strings.TrimSpace(s.Endpoint) != ""
}

// LoadSettings reads Settings from SCHOOL_OF_CODE_OTEL_* variables.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.ParseEnvWithPrefix(&s, envPrefix); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Setup initialises OpenTelemetry tracing for the given service from the
// environment. Tracing is opt-in: an empty endpoint or ENABLED=false yields a
// no-op shutdown and leaves the global provider untouched.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	settings, err := LoadSettings()
	if err != nil {
		return noop, err
	}
	return SetupWithSettings(ctx, serviceName, settings)
}

// SetupWithSettings is Setup with explicit settings. The returned shutdown
// flushes pending spans and should be deferred by the caller.
func SetupWithSettings(ctx context.Context, serviceName string, settings Settings) (func(context.Context) error, error) {
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)),
	)
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceNamespace(ServiceNamespace),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
