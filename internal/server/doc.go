// Package server provides the MCP server context, health endpoints and
// the dedicated metrics server.
//
// ServerContext holds one fully constructed client per enabled Workspace
// service family. It is built exactly once before the transport starts:
// credentials are resolved and clients created up front, and the context
// is read-only afterwards. A credential failure for any enabled family
// aborts startup rather than deferring the error to the first tool call.
//
// HealthChecker exposes /healthz and /readyz handlers for probes on the
// HTTP transport. MetricsServer serves Prometheus metrics on a dedicated
// port, isolated from MCP traffic.
package server
