package meet_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/meet"
	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

// RegisterMeetTools registers all Meet tools with the MCP server.
// Mutating tools are skipped in read-only mode.
func RegisterMeetTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getTool := mcp.NewTool("meet_get",
		mcp.WithDescription("Get details of a Meet meeting"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting"),
		),
	)
	s.AddTool(getTool, common.InstrumentedHandler("meet_get", "meet", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meeting, err := sc.MeetClient().GetMeeting(ctx, meetingID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get meeting: %v", err)), nil
			}
			return common.JSONResult(meeting)
		}))

	listTool := mcp.NewTool("meet_list",
		mcp.WithDescription("List upcoming Meet meetings within a time range"),
		mcp.WithString("timeMin",
			mcp.Description("Start of the range (RFC 3339, default now)"),
		),
		mcp.WithString("timeMax",
			mcp.Description("End of the range (RFC 3339)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of meetings to return (default 25)"),
		),
	)
	s.AddTool(listTool, common.InstrumentedHandler("meet_list", "meet", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			timeMin, err := common.OptionalTimeArg(args, "timeMin")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			timeMax, err := common.OptionalTimeArg(args, "timeMax")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meetings, err := sc.MeetClient().ListMeetings(ctx, meet.ListMeetingsOptions{
				TimeMin:    timeMin,
				TimeMax:    timeMax,
				MaxResults: common.IntArg(args, "maxResults", 25),
			})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list meetings: %v", err)), nil
			}
			return common.JSONResult(meetings)
		}))

	joinInfoTool := mcp.NewTool("meet_get_join_info",
		mcp.WithDescription("Get join information for a meeting: Meet link, conference ID and dial-in numbers"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting"),
		),
	)
	s.AddTool(joinInfoTool, common.InstrumentedHandler("meet_get_join_info", "meet", "get_join_info", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.MeetClient().GetJoinInfo(ctx, meetingID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get join info: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	if !sc.ReadOnly() {
		registerMeetMutationTools(s, sc)
	}

	return nil
}

func registerMeetMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createTool := mcp.NewTool("meet_create",
		mcp.WithDescription("Schedule a Meet meeting and invite attendees"),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Meeting title"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC 3339)"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC 3339)"),
		),
		mcp.WithString("description",
			mcp.Description("Meeting description"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone for start/end"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated attendee email addresses"),
		),
		mcp.WithBoolean("guestsCanModify",
			mcp.Description("Allow invited guests to edit the meeting"),
		),
	)
	s.AddTool(createTool, common.InstrumentedHandler("meet_create", "meet", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			input, errResult := meetingInputFromArgs(args, true)
			if errResult != nil {
				return errResult, nil
			}

			meeting, err := sc.MeetClient().CreateMeeting(ctx, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create meeting: %v", err)), nil
			}
			return common.JSONResult(meeting)
		}))

	updateTool := mcp.NewTool("meet_update",
		mcp.WithDescription("Update a meeting's details"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New meeting title"),
		),
		mcp.WithString("start",
			mcp.Description("New start time (RFC 3339)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time (RFC 3339)"),
		),
		mcp.WithString("description",
			mcp.Description("New meeting description"),
		),
		mcp.WithString("timeZone",
			mcp.Description("New time zone for start/end"),
		),
	)
	s.AddTool(updateTool, common.InstrumentedHandler("meet_update", "meet", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			input, errResult := meetingInputFromArgs(args, false)
			if errResult != nil {
				return errResult, nil
			}

			meeting, err := sc.MeetClient().UpdateMeeting(ctx, meetingID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update meeting: %v", err)), nil
			}
			return common.JSONResult(meeting)
		}))

	deleteTool := mcp.NewTool("meet_delete",
		mcp.WithDescription("Cancel a meeting and notify attendees"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting to cancel"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedHandler("meet_delete", "meet", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.MeetClient().DeleteMeeting(ctx, meetingID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete meeting: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Meeting %s deleted", meetingID)), nil
		}))

	addAttendeeTool := mcp.NewTool("meet_add_attendee",
		mcp.WithDescription("Invite an attendee to a meeting"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Attendee email address"),
		),
		mcp.WithBoolean("optional",
			mcp.Description("Mark attendance as optional"),
		),
	)
	s.AddTool(addAttendeeTool, common.InstrumentedHandler("meet_add_attendee", "meet", "add_attendee", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			email, err := common.StringArg(args, "email")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meeting, err := sc.MeetClient().AddAttendee(ctx, meetingID, email, common.BoolArg(args, "optional", false))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to add attendee: %v", err)), nil
			}
			return common.JSONResult(meeting)
		}))

	removeAttendeeTool := mcp.NewTool("meet_remove_attendee",
		mcp.WithDescription("Remove an attendee from a meeting"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Attendee email address"),
		),
	)
	s.AddTool(removeAttendeeTool, common.InstrumentedHandler("meet_remove_attendee", "meet", "remove_attendee", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			email, err := common.StringArg(args, "email")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meeting, err := sc.MeetClient().RemoveAttendee(ctx, meetingID, email)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to remove attendee: %v", err)), nil
			}
			return common.JSONResult(meeting)
		}))

	statusTool := mcp.NewTool("meet_update_attendee_status",
		mcp.WithDescription("Set an attendee's response status on a meeting"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Attendee email address"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("Response status: 'accepted', 'declined', 'tentative', 'needsAction'"),
		),
	)
	s.AddTool(statusTool, common.InstrumentedHandler("meet_update_attendee_status", "meet", "update_attendee_status", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			email, err := common.StringArg(args, "email")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			status, err := common.StringArg(args, "status")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			meeting, err := sc.MeetClient().UpdateAttendeeStatus(ctx, meetingID, email, status)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update attendee status: %v", err)), nil
			}
			return common.JSONResult(meeting)
		}))

	shareTool := mcp.NewTool("meet_share",
		mcp.WithDescription("Share a meeting by inviting additional participants and re-sending invitations"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting"),
		),
		mcp.WithString("emails",
			mcp.Required(),
			mcp.Description("Comma-separated email addresses to invite"),
		),
	)
	s.AddTool(shareTool, common.InstrumentedHandler("meet_share", "meet", "share", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			meetingID, err := common.StringArg(args, "meetingId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			emails := common.StringListArg(args, "emails")
			if len(emails) == 0 {
				return mcp.NewToolResultError("emails parameter is required"), nil
			}

			meeting, err := sc.MeetClient().ShareMeeting(ctx, meetingID, emails)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to share meeting: %v", err)), nil
			}
			return common.JSONResult(meeting)
		}))
}

// meetingInputFromArgs builds a MeetingInput from tool arguments. When
// required is set, summary/start/end are mandatory.
func meetingInputFromArgs(args map[string]interface{}, required bool) (meet.MeetingInput, *mcp.CallToolResult) {
	var input meet.MeetingInput

	if required {
		summary, err := common.StringArg(args, "summary")
		if err != nil {
			return input, mcp.NewToolResultError(err.Error())
		}
		input.Summary = summary

		start, err := common.TimeArg(args, "start")
		if err != nil {
			return input, mcp.NewToolResultError(err.Error())
		}
		end, err := common.TimeArg(args, "end")
		if err != nil {
			return input, mcp.NewToolResultError(err.Error())
		}
		input.Start = start
		input.End = end
	} else {
		input.Summary = common.OptionalStringArg(args, "summary", "")

		start, err := common.OptionalTimeArg(args, "start")
		if err != nil {
			return input, mcp.NewToolResultError(err.Error())
		}
		end, err := common.OptionalTimeArg(args, "end")
		if err != nil {
			return input, mcp.NewToolResultError(err.Error())
		}
		input.Start = start
		input.End = end
	}

	input.Description = common.OptionalStringArg(args, "description", "")
	input.TimeZone = common.OptionalStringArg(args, "timeZone", "")
	input.Attendees = common.StringListArg(args, "attendees")
	input.GuestsCanModify = common.BoolArg(args, "guestsCanModify", false)

	return input, nil
}
