package calendar_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/calendar"
	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

// RegisterCalendarTools registers all Calendar tools with the MCP server.
// Mutating tools are skipped in read-only mode.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerCalendarManagementTools(s, sc)
	if err := registerEventTools(s, sc); err != nil {
		return fmt.Errorf("failed to register event tools: %w", err)
	}
	registerSchedulingTools(s, sc)
	return nil
}

func registerCalendarManagementTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	getTool := mcp.NewTool("calendar_get",
		mcp.WithDescription("Get metadata of a calendar"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
	)
	s.AddTool(getTool, common.InstrumentedHandler("calendar_get", "calendar", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			calendarID := common.OptionalStringArg(args, "calendarId", "primary")

			info, err := sc.CalendarClient().GetCalendar(ctx, calendarID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get calendar: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	listTool := mcp.NewTool("calendar_list",
		mcp.WithDescription("List all calendars visible to the authenticated user"),
	)
	s.AddTool(listTool, common.InstrumentedHandler("calendar_list", "calendar", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			calendars, err := sc.CalendarClient().ListCalendars(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list calendars: %v", err)), nil
			}
			return common.JSONResult(calendars)
		}))

	if sc.ReadOnly() {
		return
	}

	createTool := mcp.NewTool("calendar_create",
		mcp.WithDescription("Create a new calendar"),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Calendar title"),
		),
		mcp.WithString("description",
			mcp.Description("Calendar description"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Calendar time zone (e.g. 'Europe/Berlin')"),
		),
	)
	s.AddTool(createTool, common.InstrumentedHandler("calendar_create", "calendar", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			summary, err := common.StringArg(args, "summary")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.CalendarClient().CreateCalendar(ctx, calendar.CalendarInput{
				Summary:     summary,
				Description: common.OptionalStringArg(args, "description", ""),
				TimeZone:    common.OptionalStringArg(args, "timeZone", ""),
			})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create calendar: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	updateTool := mcp.NewTool("calendar_update",
		mcp.WithDescription("Update a calendar's metadata"),
		mcp.WithString("calendarId",
			mcp.Required(),
			mcp.Description("Calendar ID to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New calendar title"),
		),
		mcp.WithString("description",
			mcp.Description("New calendar description"),
		),
		mcp.WithString("timeZone",
			mcp.Description("New calendar time zone"),
		),
	)
	s.AddTool(updateTool, common.InstrumentedHandler("calendar_update", "calendar", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			calendarID, err := common.StringArg(args, "calendarId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.CalendarClient().UpdateCalendar(ctx, calendarID, calendar.CalendarInput{
				Summary:     common.OptionalStringArg(args, "summary", ""),
				Description: common.OptionalStringArg(args, "description", ""),
				TimeZone:    common.OptionalStringArg(args, "timeZone", ""),
			})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update calendar: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	deleteTool := mcp.NewTool("calendar_delete",
		mcp.WithDescription("Delete a secondary calendar. The primary calendar cannot be deleted."),
		mcp.WithString("calendarId",
			mcp.Required(),
			mcp.Description("Calendar ID to delete"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedHandler("calendar_delete", "calendar", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			calendarID, err := common.StringArg(args, "calendarId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.CalendarClient().DeleteCalendar(ctx, calendarID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete calendar: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Calendar %s deleted", calendarID)), nil
		}))

	shareTool := mcp.NewTool("calendar_share",
		mcp.WithDescription("Share a calendar with a user by granting an ACL role"),
		mcp.WithString("calendarId",
			mcp.Required(),
			mcp.Description("Calendar ID to share"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address to grant access to"),
		),
		mcp.WithString("role",
			mcp.Description("Access role: 'reader', 'writer', 'owner', 'freeBusyReader' (default 'reader')"),
		),
	)
	s.AddTool(shareTool, common.InstrumentedHandler("calendar_share", "calendar", "share", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			calendarID, err := common.StringArg(args, "calendarId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			email, err := common.StringArg(args, "email")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			role := common.OptionalStringArg(args, "role", "reader")

			rule, err := sc.CalendarClient().ShareCalendar(ctx, calendarID, email, role)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to share calendar: %v", err)), nil
			}
			return common.JSONResult(rule)
		}))
}
