// Package drive_tools exposes Google Drive operations as MCP tools:
// search, folder creation, upload, move/rename/delete, content download
// with export of Google-native formats, sharing and metadata.
package drive_tools
