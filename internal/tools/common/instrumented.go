package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/workspacekit/workspace-mcp/internal/instrumentation"
)

// InstrumentationSource yields the metrics recorder and audit logger for
// a server run. *server.ServerContext satisfies it; either accessor may
// return nil when the concern is disabled.
type InstrumentationSource interface {
	Metrics() *instrumentation.Metrics
	AuditLogger() *instrumentation.AuditLogger
}

// InstrumentedHandler wraps a tool handler with metrics and audit logging.
// Each invocation records the MCP tool metric and, because every tool maps
// to exactly one Workspace API surface, the per-service operation metric.
//
// Usage:
//
//	s.AddTool(tool, common.InstrumentedHandler("gmail_send_message", "gmail", "send", sc, handler))
func InstrumentedHandler(
	toolName string,
	serviceName string,
	operation string,
	src InstrumentationSource,
	handler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error),
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := src.Metrics()
		auditLogger := src.AuditLogger()

		if metrics == nil && auditLogger == nil {
			return handler(ctx, request)
		}

		ctx, span := instrumentation.StartToolSpan(ctx, toolName,
			attribute.String(instrumentation.SpanAttrService, serviceName),
			attribute.String(instrumentation.SpanAttrOperation, operation),
		)

		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx).
			WithService(serviceName, operation)

		result, err := handler(ctx, request)
		duration := time.Since(start)
		instrumentation.EndSpan(span, err)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				invocation.CompleteWithError(err)
			} else {
				invocation.Complete(false, nil)
			}
		} else {
			invocation.CompleteSuccess()
		}

		if metrics != nil {
			metrics.RecordToolInvocation(ctx, toolName, status, duration)
			metrics.RecordWorkspaceAPIOperation(ctx, serviceName, operation, status, duration)
		}

		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return result, err
	}
}
