package calendar_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

func registerSchedulingTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	freeBusyTool := mcp.NewTool("calendar_free_busy",
		mcp.WithDescription("Query free/busy intervals for one or more calendars within a time range"),
		mcp.WithString("timeMin",
			mcp.Required(),
			mcp.Description("Start of the range (RFC 3339)"),
		),
		mcp.WithString("timeMax",
			mcp.Required(),
			mcp.Description("End of the range (RFC 3339)"),
		),
		mcp.WithString("calendarIds",
			mcp.Description("Comma-separated calendar IDs to query (default 'primary')"),
		),
	)
	s.AddTool(freeBusyTool, common.InstrumentedHandler("calendar_free_busy", "calendar", "free_busy", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			timeMin, err := common.TimeArg(args, "timeMin")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			timeMax, err := common.TimeArg(args, "timeMax")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			calendarIDs := common.StringListArg(args, "calendarIds")
			if len(calendarIDs) == 0 {
				calendarIDs = []string{"primary"}
			}

			info, err := sc.CalendarClient().FreeBusy(ctx,
				timeMin.Format(time.RFC3339), timeMax.Format(time.RFC3339), calendarIDs)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to query free/busy: %v", err)), nil
			}
			return common.JSONResult(info)
		}))
}
