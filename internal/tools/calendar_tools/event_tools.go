package calendar_tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/calendar"
	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

func registerEventTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listEventsTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List/search calendar events within a time range"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
		mcp.WithString("timeMin",
			mcp.Description("Start of the range (RFC 3339, e.g. '2026-01-01T00:00:00Z')"),
		),
		mcp.WithString("timeMax",
			mcp.Description("End of the range (RFC 3339)"),
		),
		mcp.WithString("query",
			mcp.Description("Free-text search over event fields"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of events to return (default 50)"),
		),
	)
	s.AddTool(listEventsTool, common.InstrumentedHandler("calendar_list_events", "calendar", "list_events", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			calendarID := common.OptionalStringArg(args, "calendarId", "primary")

			timeMin, err := common.OptionalTimeArg(args, "timeMin")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			timeMax, err := common.OptionalTimeArg(args, "timeMax")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			events, err := sc.CalendarClient().ListEvents(ctx, calendarID, calendar.ListEventsOptions{
				TimeMin:    timeMin,
				TimeMax:    timeMax,
				Query:      common.OptionalStringArg(args, "query", ""),
				MaxResults: common.IntArg(args, "maxResults", 50),
			})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
			}
			return common.JSONResult(events)
		}))

	getEventTool := mcp.NewTool("calendar_get_event",
		mcp.WithDescription("Get details of a specific calendar event"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to retrieve"),
		),
	)
	s.AddTool(getEventTool, common.InstrumentedHandler("calendar_get_event", "calendar", "get_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			calendarID := common.OptionalStringArg(args, "calendarId", "primary")
			eventID, err := common.StringArg(args, "eventId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			event, err := sc.CalendarClient().GetEvent(ctx, calendarID, eventID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get event: %v", err)), nil
			}
			return common.JSONResult(event)
		}))

	if sc.ReadOnly() {
		return nil
	}

	createEventTool := mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create a calendar event, optionally recurring or with a Google Meet link"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC 3339, e.g. '2026-01-15T14:00:00Z')"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC 3339)"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone for start/end (e.g. 'America/New_York')"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated attendee email addresses"),
		),
		mcp.WithString("recurrence",
			mcp.Description("Recurrence rule (e.g. 'RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR')"),
		),
		mcp.WithString("sendUpdates",
			mcp.Description("Attendee notification: 'all', 'externalOnly', 'none'"),
		),
		mcp.WithBoolean("addGoogleMeet",
			mcp.Description("Attach a Google Meet conference to the event"),
		),
	)
	s.AddTool(createEventTool, common.InstrumentedHandler("calendar_create_event", "calendar", "create_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			input, errResult := eventInputFromArgs(args, true)
			if errResult != nil {
				return errResult, nil
			}
			if input.AddConference {
				input.ConferenceRequestID = uuid.NewString()
			}

			event, err := sc.CalendarClient().CreateEvent(ctx, common.OptionalStringArg(args, "calendarId", "primary"), input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
			}
			return common.JSONResult(event)
		}))

	updateEventTool := mcp.NewTool("calendar_update_event",
		mcp.WithDescription("Update fields of an existing calendar event"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("summary",
			mcp.Description("New event title"),
		),
		mcp.WithString("start",
			mcp.Description("New start time (RFC 3339)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time (RFC 3339)"),
		),
		mcp.WithString("description",
			mcp.Description("New event description"),
		),
		mcp.WithString("location",
			mcp.Description("New event location"),
		),
		mcp.WithString("timeZone",
			mcp.Description("New time zone for start/end"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated attendee email addresses (replaces the attendee list)"),
		),
		mcp.WithString("sendUpdates",
			mcp.Description("Attendee notification: 'all', 'externalOnly', 'none'"),
		),
	)
	s.AddTool(updateEventTool, common.InstrumentedHandler("calendar_update_event", "calendar", "update_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			eventID, err := common.StringArg(args, "eventId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			input, errResult := eventInputFromArgs(args, false)
			if errResult != nil {
				return errResult, nil
			}

			event, err := sc.CalendarClient().UpdateEvent(ctx, common.OptionalStringArg(args, "calendarId", "primary"), eventID, input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update event: %v", err)), nil
			}
			return common.JSONResult(event)
		}))

	deleteEventTool := mcp.NewTool("calendar_delete_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to delete"),
		),
		mcp.WithString("sendUpdates",
			mcp.Description("Attendee notification: 'all', 'externalOnly', 'none'"),
		),
	)
	s.AddTool(deleteEventTool, common.InstrumentedHandler("calendar_delete_event", "calendar", "delete_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			eventID, err := common.StringArg(args, "eventId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			calendarID := common.OptionalStringArg(args, "calendarId", "primary")
			sendUpdates := common.OptionalStringArg(args, "sendUpdates", "")
			if err := sc.CalendarClient().DeleteEvent(ctx, calendarID, eventID, sendUpdates); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete event: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Event %s deleted", eventID)), nil
		}))

	quickAddTool := mcp.NewTool("calendar_quick_add_event",
		mcp.WithDescription("Create an event from natural language text (e.g. 'Lunch with Sam Friday noon')"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Natural language event description"),
		),
	)
	s.AddTool(quickAddTool, common.InstrumentedHandler("calendar_quick_add_event", "calendar", "quick_add_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			text, err := common.StringArg(args, "text")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			event, err := sc.CalendarClient().QuickAddEvent(ctx, common.OptionalStringArg(args, "calendarId", "primary"), text)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to quick-add event: %v", err)), nil
			}
			return common.JSONResult(event)
		}))

	moveEventTool := mcp.NewTool("calendar_move_event",
		mcp.WithDescription("Move an event to a different calendar"),
		mcp.WithString("calendarId",
			mcp.Description("Source calendar ID (default 'primary')"),
		),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to move"),
		),
		mcp.WithString("destinationCalendarId",
			mcp.Required(),
			mcp.Description("Calendar ID to move the event to"),
		),
	)
	s.AddTool(moveEventTool, common.InstrumentedHandler("calendar_move_event", "calendar", "move_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			eventID, err := common.StringArg(args, "eventId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			destination, err := common.StringArg(args, "destinationCalendarId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			event, err := sc.CalendarClient().MoveEvent(ctx, common.OptionalStringArg(args, "calendarId", "primary"), eventID, destination)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to move event: %v", err)), nil
			}
			return common.JSONResult(event)
		}))

	importEventTool := mcp.NewTool("calendar_import_event",
		mcp.WithDescription("Import an event with a fixed iCalendar UID, preserving its identity across calendars"),
		mcp.WithString("calendarId",
			mcp.Description("Calendar ID (default 'primary')"),
		),
		mcp.WithString("iCalUID",
			mcp.Required(),
			mcp.Description("iCalendar UID of the event"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("Event title"),
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
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("timeZone",
			mcp.Description("Time zone for start/end"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated attendee email addresses"),
		),
	)
	s.AddTool(importEventTool, common.InstrumentedHandler("calendar_import_event", "calendar", "import_event", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			iCalUID, err := common.StringArg(args, "iCalUID")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			input, errResult := eventInputFromArgs(args, true)
			if errResult != nil {
				return errResult, nil
			}
			input.ICalUID = iCalUID

			event, err := sc.CalendarClient().ImportEvent(ctx, common.OptionalStringArg(args, "calendarId", "primary"), input)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to import event: %v", err)), nil
			}
			return common.JSONResult(event)
		}))

	return nil
}

// eventInputFromArgs builds an EventInput from tool arguments. When
// requireTimes is set, summary/start/end are mandatory; otherwise absent
// fields stay zero so the update patch omits them.
func eventInputFromArgs(args map[string]interface{}, requireTimes bool) (calendar.EventInput, *mcp.CallToolResult) {
	var input calendar.EventInput

	if requireTimes {
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
	input.Location = common.OptionalStringArg(args, "location", "")
	input.TimeZone = common.OptionalStringArg(args, "timeZone", "")
	input.Attendees = common.StringListArg(args, "attendees")
	input.SendUpdates = common.OptionalStringArg(args, "sendUpdates", "")
	input.AddConference = common.BoolArg(args, "addGoogleMeet", false)

	if rule := common.OptionalStringArg(args, "recurrence", ""); rule != "" {
		input.Recurrence = []string{rule}
	}

	return input, nil
}
