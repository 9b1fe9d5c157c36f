// Package calendar_tools exposes Google Calendar operations as MCP
// tools: calendar management, event CRUD including quick-add, move and
// iCalendar import, and free/busy queries.
package calendar_tools
