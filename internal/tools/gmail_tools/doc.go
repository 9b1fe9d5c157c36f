// Package gmail_tools exposes Gmail operations as MCP tools: message
// and thread retrieval, search, sending with reply threading and
// forwarding, label management, batch modify/delete and attachments.
package gmail_tools
