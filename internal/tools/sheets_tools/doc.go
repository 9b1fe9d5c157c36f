// Package sheets_tools exposes Google Sheets operations as MCP tools:
// spreadsheet creation and discovery, cell value reads and writes in A1
// notation, sheet (tab) management and sharing.
package sheets_tools
