package otel_test

import (
	"context"
	"testing"

	"github.com/developerdao/schoolofcode/internal/platform/otel"
)

func TestSettingsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings otel.Settings
		want     bool
	}{
		{name: "empty", settings: otel.Settings{}, want: false},
		{name: "blank endpoint", settings: otel.Settings{Endpoint: "  "}, want: false},
		{name: "endpoint", settings: otel.Settings{Endpoint: "http://localhost:4318"}, want: true},
		{name: "disabled", settings: otel.Settings{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
		{name: "enabled", settings: otel.Settings{Endpoint: "http://localhost:4318", Enabled: "true"}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.settings.Active(); got != tc.want {
				t.Fatalf("Active() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestLoadSettingsReadsPrefixedEnv(t *testing.T) {
	t.Setenv(otel.EnvEndpoint, "http://collector:4318")
	t.Setenv(otel.EnvEnabled, "false")

	s, err := otel.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Endpoint != "http://collector:4318" || s.Enabled != "false" {
		t.Fatalf("LoadSettings() = %+v", s)
	}
	if s.Active() {
		t.Fatal("settings should be inactive when explicitly disabled")
	}
}

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv(otel.EnvEndpoint, "")
	t.Setenv(otel.EnvEnabled, "")

	shutdown, err := otel.Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown error = %v", err)
	}
}

func TestSetupWithSettingsCreatesProvider(t *testing.T) {
	// Non-routable address so no export happens.
	shutdown, err := otel.SetupWithSettings(context.Background(), "web", otel.Settings{Endpoint: "http://192.0.2.1:4318"})
	if err != nil {
		t.Fatalf("SetupWithSettings() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}
