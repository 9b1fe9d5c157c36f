// Package common provides shared helpers for the MCP tool packages:
// argument extraction from tool requests and the instrumentation wrapper
// that records metrics and audit logs around every handler.
package common
