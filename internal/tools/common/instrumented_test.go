package common

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/workspacekit/workspace-mcp/internal/instrumentation"
)

type stubSource struct {
	metrics *instrumentation.Metrics
	audit   *instrumentation.AuditLogger
}

func (s *stubSource) Metrics() *instrumentation.Metrics          { return s.metrics }
func (s *stubSource) AuditLogger() *instrumentation.AuditLogger { return s.audit }

func TestInstrumentedHandlerPassThrough(t *testing.T) {
	called := false
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := InstrumentedHandler("test_tool", "drive", "search", &stubSource{}, handler)

	result, err := wrapped(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
	if result == nil {
		t.Fatal("expected result")
	}
}

func TestInstrumentedHandlerRecordsSuccess(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	var buf bytes.Buffer
	audit := instrumentation.NewAuditLogger(
		slog.New(slog.NewTextHandler(&buf, nil)),
		instrumentation.AuditLoggingConfig{Enabled: true},
	)

	src := &stubSource{metrics: metrics, audit: audit}

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	}

	if _, err := InstrumentedHandler("gmail_send_message", "gmail", "send", src, handler)(context.Background(), mcp.CallToolRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "tool=gmail_send_message") {
		t.Errorf("expected audit record with tool name, got %q", out)
	}
	if !strings.Contains(out, "success=true") {
		t.Errorf("expected success audit record, got %q", out)
	}
}

func TestInstrumentedHandlerRecordsError(t *testing.T) {
	var buf bytes.Buffer
	audit := instrumentation.NewAuditLogger(
		slog.New(slog.NewTextHandler(&buf, nil)),
		instrumentation.AuditLoggingConfig{Enabled: true},
	)

	src := &stubSource{audit: audit}

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, errors.New("quota exceeded")
	}

	_, err := InstrumentedHandler("drive_upload_file", "drive", "upload", src, handler)(context.Background(), mcp.CallToolRequest{})
	if err == nil {
		t.Fatal("expected handler error to propagate")
	}

	out := buf.String()
	if !strings.Contains(out, "success=false") {
		t.Errorf("expected failure audit record, got %q", out)
	}
	if !strings.Contains(out, "quota exceeded") {
		t.Errorf("expected error message in audit record, got %q", out)
	}
}

func TestInstrumentedHandlerErrorResult(t *testing.T) {
	var buf bytes.Buffer
	audit := instrumentation.NewAuditLogger(
		slog.New(slog.NewTextHandler(&buf, nil)),
		instrumentation.AuditLoggingConfig{Enabled: true},
	)

	src := &stubSource{audit: audit}

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("file not found"), nil
	}

	result, err := InstrumentedHandler("drive_get_file_metadata", "drive", "get", src, handler)(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result to pass through")
	}

	if !strings.Contains(buf.String(), "success=false") {
		t.Errorf("expected failure audit record, got %q", buf.String())
	}
}
