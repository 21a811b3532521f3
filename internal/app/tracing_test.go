package app

import (
	"context"
	"testing"
)

func TestTracingExporterOptions(t *testing.T) {
	opts, err := tracingExporterOptions(tracingConfig{Endpoint: "http://collector:4318/v1/traces"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("expected endpoint, insecure and compression options, got %d", len(opts))
	}

	opts, err = tracingExporterOptions(tracingConfig{Endpoint: "https://otel.example.com/v1/traces", Gzip: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("expected endpoint and compression options, got %d", len(opts))
	}
}

func TestTracingExporterOptions_InvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"", "collector:4318", "://bad"} {
		if _, err := tracingExporterOptions(tracingConfig{Endpoint: endpoint}); err == nil {
			t.Fatalf("expected error for endpoint %q", endpoint)
		}
	}
}

func TestInitTracing_InvalidEndpoint(t *testing.T) {
	if _, err := initTracing(context.Background(), tracingConfig{Endpoint: "nope"}, nil); err == nil {
		t.Fatalf("expected error")
	}
}
