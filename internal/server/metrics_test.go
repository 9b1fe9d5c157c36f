package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workspacekit/workspace-mcp/internal/instrumentation"
)

func newPrometheusProvider(t *testing.T) *instrumentation.Provider {
	t.Helper()
	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName:     "workspace-mcp-test",
		ServiceVersion:  "0.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
	return provider
}

func TestNewMetricsServerRequiresProvider(t *testing.T) {
	_, err := NewMetricsServer(MetricsServerConfig{Addr: ":9090", Enabled: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instrumentation provider is required")
}

func TestNewMetricsServerRejectsDisabledProvider(t *testing.T) {
	disabled, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName: "workspace-mcp-test",
		Enabled:     false,
	})
	require.NoError(t, err)

	_, err = NewMetricsServer(MetricsServerConfig{
		Addr:                    ":9090",
		Enabled:                 true,
		InstrumentationProvider: disabled,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enabled")
}

func TestNewMetricsServerDefaultsAddr(t *testing.T) {
	srv, err := NewMetricsServer(MetricsServerConfig{
		Enabled:                 true,
		InstrumentationProvider: newPrometheusProvider(t),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultMetricsAddr, srv.Addr())
}

func TestMetricsServerShutdownBeforeStart(t *testing.T) {
	srv, err := NewMetricsServer(MetricsServerConfig{
		Addr:                    ":9090",
		Enabled:                 true,
		InstrumentationProvider: newPrometheusProvider(t),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, srv.Shutdown(ctx))
}

func TestMetricsServerServesAndDrains(t *testing.T) {
	srv, err := NewMetricsServer(MetricsServerConfig{
		Addr:                    "127.0.0.1:0",
		Enabled:                 true,
		InstrumentationProvider: newPrometheusProvider(t),
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- srv.Start()
	}()

	// The listener binds inside Start, so give it a moment before draining.
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
