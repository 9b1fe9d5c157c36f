package instrumentation

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ToolInvocation captures one tool invocation for the audit trail.
type ToolInvocation struct {
	// Tool name
	Tool string

	// Target Workspace service and operation type
	ServiceName string // calendar, docs, drive, gmail, meet, sheets
	Operation   string // list, get, create, update, delete, send, ...

	// Execution details
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string

	// Tracing context
	TraceID string
	SpanID  string
}

// NewToolInvocation creates a ToolInvocation with timing started.
// Call one of the Complete methods when the tool operation finishes.
func NewToolInvocation(tool string) *ToolInvocation {
	return &ToolInvocation{
		Tool:      tool,
		StartTime: time.Now(),
	}
}

// WithService sets the Workspace service and operation type.
func (ti *ToolInvocation) WithService(service, operation string) *ToolInvocation {
	ti.ServiceName = service
	ti.Operation = operation
	return ti
}

// WithSpanContext captures trace and span IDs from the context, when a
// recording span is present.
func (ti *ToolInvocation) WithSpanContext(ctx context.Context) *ToolInvocation {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		ti.TraceID = spanCtx.TraceID().String()
		ti.SpanID = spanCtx.SpanID().String()
	}
	return ti
}

// Complete marks the invocation finished with the given outcome.
func (ti *ToolInvocation) Complete(success bool, err error) *ToolInvocation {
	ti.Duration = time.Since(ti.StartTime)
	ti.Success = success
	if err != nil {
		ti.Error = err.Error()
	}
	return ti
}

// CompleteSuccess marks the invocation as successfully finished.
func (ti *ToolInvocation) CompleteSuccess() *ToolInvocation {
	return ti.Complete(true, nil)
}

// CompleteWithError marks the invocation as failed with the given error.
func (ti *ToolInvocation) CompleteWithError(err error) *ToolInvocation {
	return ti.Complete(false, err)
}

// Status returns "success" or "error" based on the Success field.
func (ti *ToolInvocation) Status() string {
	if ti.Success {
		return StatusSuccess
	}
	return StatusError
}

// LogAttrs returns slog attributes for the audit record.
func (ti *ToolInvocation) LogAttrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("tool", ti.Tool),
		slog.Duration("duration", ti.Duration),
		slog.Bool("success", ti.Success),
	}

	if ti.ServiceName != "" {
		attrs = append(attrs, slog.String("service", ti.ServiceName))
	}
	if ti.Operation != "" {
		attrs = append(attrs, slog.String("operation", ti.Operation))
	}
	if ti.TraceID != "" {
		attrs = append(attrs, slog.String("trace_id", ti.TraceID))
	}
	if ti.SpanID != "" {
		attrs = append(attrs, slog.String("span_id", ti.SpanID))
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}

	return attrs
}

// AuditLogger emits one structured record per tool invocation.
type AuditLogger struct {
	logger  *slog.Logger
	enabled bool
}

// NewAuditLogger creates an audit logger. A nil logger falls back to
// slog.Default().
func NewAuditLogger(logger *slog.Logger, config AuditLoggingConfig) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger:  logger,
		enabled: config.Enabled,
	}
}

// LogToolInvocation writes the audit record for a completed invocation.
func (a *AuditLogger) LogToolInvocation(ti *ToolInvocation) {
	if a == nil || !a.enabled {
		return
	}

	level := slog.LevelInfo
	if !ti.Success {
		level = slog.LevelWarn
	}

	a.logger.LogAttrs(context.Background(), level, "tool invocation", ti.LogAttrs()...)
}
