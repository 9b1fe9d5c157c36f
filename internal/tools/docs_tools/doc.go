// Package docs_tools exposes Google Docs operations as MCP tools:
// document CRUD, content retrieval as plain text or Markdown, text
// insertion and replacement, formatting, raw batch updates and sharing.
package docs_tools
