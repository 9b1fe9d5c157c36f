// Package logging provides structured logging helpers shared across the
// workspace-mcp codebase.
//
// It centralizes slog attribute naming (operation, service, tool, status,
// error) so log lines stay greppable, and offers sanitizers for values that
// must never reach the logs verbatim, such as OAuth tokens.
package logging
