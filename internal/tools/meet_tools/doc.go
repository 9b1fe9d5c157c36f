// Package meet_tools exposes Google Meet scheduling as MCP tools.
// Meetings are Calendar events carrying Meet conference data; the tools
// cover meeting CRUD, attendee management and join information.
package meet_tools
