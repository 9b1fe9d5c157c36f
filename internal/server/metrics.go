package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/workspacekit/workspace-mcp/internal/instrumentation"
)

// DefaultMetricsAddr is the address the metrics server binds to when the
// configuration leaves it empty.
const DefaultMetricsAddr = ":9090"

const (
	metricsReadHeaderTimeout = 10 * time.Second
	metricsWriteTimeout      = 10 * time.Second
	metricsIdleTimeout       = 60 * time.Second
)

// MetricsServerConfig configures the dedicated metrics listener.
type MetricsServerConfig struct {
	// Addr is the listen address, e.g. ":9090".
	Addr string

	// Enabled gates whether the server should run at all.
	Enabled bool

	// InstrumentationProvider owns the OTel pipeline whose Prometheus
	// exporter feeds the /metrics endpoint.
	InstrumentationProvider *instrumentation.Provider
}

// MetricsServer exposes Prometheus metrics on its own port, separate from
// the MCP transport, so operational data never rides on the tool endpoint.
type MetricsServer struct {
	addr       string
	httpServer *http.Server
}

// NewMetricsServer validates the configuration and returns a server ready
// to Start. The instrumentation provider must exist and be enabled; the
// exporter it registers is what /metrics serves.
func NewMetricsServer(config MetricsServerConfig) (*MetricsServer, error) {
	if config.InstrumentationProvider == nil {
		return nil, fmt.Errorf("instrumentation provider is required for metrics server")
	}
	if !config.InstrumentationProvider.Enabled() {
		return nil, fmt.Errorf("instrumentation provider is not enabled")
	}

	addr := config.Addr
	if addr == "" {
		addr = DefaultMetricsAddr
	}
	return &MetricsServer{addr: addr}, nil
}

// Start listens and serves until Shutdown or a listener error. It blocks;
// run it in a goroutine when the caller has other work.
func (s *MetricsServer) Start() error {
	mux := http.NewServeMux()

	// The OTel prometheus exporter publishes into the default registry,
	// so the stock promhttp handler is all that is needed here.
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
		WriteTimeout:      metricsWriteTimeout,
		IdleTimeout:       metricsIdleTimeout,
	}

	slog.Info("starting metrics server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight scrapes and stops the listener. Calling it
// before Start is a no-op.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	slog.Info("shutting down metrics server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the resolved listen address.
func (s *MetricsServer) Addr() string {
	return s.addr
}
