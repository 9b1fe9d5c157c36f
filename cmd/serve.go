package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/google"
	"github.com/workspacekit/workspace-mcp/internal/instrumentation"
	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/calendar_tools"
	"github.com/workspacekit/workspace-mcp/internal/tools/docs_tools"
	"github.com/workspacekit/workspace-mcp/internal/tools/drive_tools"
	"github.com/workspacekit/workspace-mcp/internal/tools/gmail_tools"
	"github.com/workspacekit/workspace-mcp/internal/tools/meet_tools"
	"github.com/workspacekit/workspace-mcp/internal/tools/sheets_tools"
)

// serveOptions holds the resolved serve configuration after flags and
// environment variables are merged.
type serveOptions struct {
	transport      string
	httpAddr       string
	debug          bool
	yolo           bool
	services       []string
	driveFolderID  string
	metricsEnabled bool
	metricsAddr    string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server exposing Google Workspace tools.

By default all service families are enabled and the server runs on the
stdio transport in read-only mode. Use --services to enable a subset,
--transport streamable-http for HTTP deployments, and --yolo to enable
write operations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&opts.transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&opts.httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport). Can also use PORT env var.")
	cmd.Flags().BoolVar(&opts.yolo, "yolo", false, "Enable write operations (sending email, deleting files, etc.). Default is read-only mode.")
	cmd.Flags().StringSliceVar(&opts.services, "services", nil, "Service families to enable (calendar,docs,drive,gmail,meet,sheets). Default: all. Can also use WORKSPACE_SERVICES env var.")
	cmd.Flags().StringVar(&opts.driveFolderID, "drive-folder-id", "", "Drive folder ID that parents documents and spreadsheets created by the server. Can also use DRIVE_FOLDER_ID env var.")
	cmd.Flags().BoolVar(&opts.metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port (HTTP transport only). Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

// applyEnvOverrides fills unset options from the environment. Flags win
// over environment variables.
func applyEnvOverrides(opts *serveOptions) {
	if port := os.Getenv("PORT"); port != "" && opts.httpAddr == ":8080" {
		opts.httpAddr = ":" + port
	}
	if opts.driveFolderID == "" {
		opts.driveFolderID = os.Getenv("DRIVE_FOLDER_ID")
	}
	if len(opts.services) == 0 {
		if env := os.Getenv("WORKSPACE_SERVICES"); env != "" {
			opts.services = parseCommaSeparatedList(env)
		}
	}
	if os.Getenv("METRICS_ENABLED") == "false" {
		opts.metricsEnabled = false
	}
	if addr := os.Getenv("METRICS_ADDR"); addr != "" && opts.metricsAddr == ":9090" {
		opts.metricsAddr = addr
	}
}

func runServe(opts serveOptions) error {
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	applyEnvOverrides(&opts)

	// On stdio the protocol owns stdout, so logs go to stderr.
	logLevel := slog.LevelInfo
	if opts.debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := server.ValidateServices(opts.services); err != nil {
		return err
	}

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			slog.Error("instrumentation shutdown failed", "error", err)
		}
	}()

	var metricsServer *server.MetricsServer
	if opts.transport != "stdio" && opts.metricsEnabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    opts.metricsAddr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics server failed", "error", err)
			}
		}()
	}

	resolver := google.NewResolver(google.ConfigFromEnv(), slog.Default())
	if provider.Enabled() {
		resolver.SetMetrics(provider.Metrics())
	}
	factory := google.NewServiceFactory(resolver)

	contextConfig := server.Config{
		Services:      opts.services,
		ReadOnly:      !opts.yolo,
		DriveFolderID: opts.driveFolderID,
	}
	if provider.Enabled() {
		contextConfig.Metrics = provider.Metrics()
		contextConfig.AuditLogger = instrumentation.NewAuditLogger(nil, instrConfig.AuditLogging)
	}

	serverContext, err := server.NewServerContext(shutdownCtx, factory, contextConfig)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if metricsServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(ctx); err != nil {
				slog.Error("metrics server shutdown failed", "error", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			slog.Error("server context shutdown failed", "error", err)
		}
	}()

	if serverContext.ReadOnly() {
		slog.Info("starting in read-only mode (use --yolo to enable write operations)",
			"services", strings.Join(serverContext.Services(), ","))
	} else {
		slog.Info("starting with write operations enabled",
			"services", strings.Join(serverContext.Services(), ","))
	}

	mcpSrv := mcpserver.NewMCPServer("workspace-mcp", version,
		mcpserver.WithToolCapabilities(true),
	)

	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	switch opts.transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, opts.httpAddr)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", opts.transport)
	}
}

// registerAllTools registers the tool families enabled on the server
// context.
func registerAllTools(mcpSrv *mcpserver.MCPServer, sc *server.ServerContext) error {
	registrations := []struct {
		service  string
		register func(*mcpserver.MCPServer, *server.ServerContext) error
	}{
		{server.ServiceCalendar, calendar_tools.RegisterCalendarTools},
		{server.ServiceDocs, docs_tools.RegisterDocsTools},
		{server.ServiceDrive, drive_tools.RegisterDriveTools},
		{server.ServiceGmail, gmail_tools.RegisterGmailTools},
		{server.ServiceMeet, meet_tools.RegisterMeetTools},
		{server.ServiceSheets, sheets_tools.RegisterSheetsTools},
	}

	for _, reg := range registrations {
		if !sc.HasService(reg.service) {
			continue
		}
		if err := reg.register(mcpSrv, sc); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", reg.service, err)
		}
	}

	return nil
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	if err := mcpserver.ServeStdio(mcpSrv); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, addr string) error {
	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv)

	healthChecker := server.NewHealthChecker(sc)

	mux := http.NewServeMux()
	healthChecker.RegisterHealthEndpoints(mux)
	mux.Handle("/mcp", streamable)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "addr", addr, "endpoint", "/mcp")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	healthChecker.SetReady(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return nil
}

// parseCommaSeparatedList splits a comma-separated string into trimmed,
// non-empty entries.
func parseCommaSeparatedList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
