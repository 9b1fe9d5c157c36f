// Package instrumentation provides OpenTelemetry-based observability for
// the workspace-mcp server.
//
// It wires up meter and tracer providers with configurable exporters
// (prometheus, otlp, stdout), exposes a Metrics recorder for tool
// invocations, Workspace API operations and credential resolution, and an
// audit logger that emits one structured record per tool call.
//
// Everything degrades gracefully: with instrumentation disabled the
// recorders become no-ops and handlers run untouched.
package instrumentation
