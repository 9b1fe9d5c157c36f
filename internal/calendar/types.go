package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

const timeFormatRFC3339 = time.RFC3339

// CalendarInput represents the input for creating or updating a calendar.
type CalendarInput struct {
	Summary     string
	Description string
	TimeZone    string
}

// EventInput represents the input for creating, updating or importing an
// event.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []string
	Recurrence  []string // RRULE, EXRULE, RDATE, EXDATE

	// SendUpdates controls attendee notification: "all", "externalOnly",
	// "none". Empty uses the API default.
	SendUpdates string

	// ICalUID is required for ImportEvent only.
	ICalUID string

	// AddConference attaches a Google Meet conference to the event.
	AddConference bool

	// ConferenceRequestID deduplicates conference creation. Required when
	// AddConference is set.
	ConferenceRequestID string
}

// ListEventsOptions filters an event listing.
type ListEventsOptions struct {
	TimeMin    time.Time
	TimeMax    time.Time
	Query      string
	MaxResults int64
}

// EventSummary represents a simplified calendar event for listing.
type EventSummary struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Creator     string
	Organizer   string
	Status      string
	Attendees   []AttendeeInfo
	MeetLink    string
	HTMLLink    string
	Recurrence  []string
}

// AttendeeInfo represents information about an event attendee.
type AttendeeInfo struct {
	Email          string
	DisplayName    string
	ResponseStatus string // "needsAction", "declined", "tentative", "accepted"
	Optional       bool
	Organizer      bool
}

// CalendarInfo represents information about a calendar.
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// AclRuleInfo represents a calendar sharing grant.
type AclRuleInfo struct {
	ID    string
	Role  string
	Email string
}

// FreeBusyInfo represents availability information for a calendar.
type FreeBusyInfo struct {
	Calendar string
	Busy     []TimeRange
	Errors   []string
}

// TimeRange represents a time range.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// buildEvent converts an EventInput into an API event for insert/import.
func buildEvent(input EventInput) *calendar.Event {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Location:    input.Location,
	}

	if !input.Start.IsZero() {
		event.Start = &calendar.EventDateTime{
			DateTime: input.Start.Format(timeFormatRFC3339),
			TimeZone: input.TimeZone,
		}
	}
	if !input.End.IsZero() {
		event.End = &calendar.EventDateTime{
			DateTime: input.End.Format(timeFormatRFC3339),
			TimeZone: input.TimeZone,
		}
	}

	for _, email := range input.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	if len(input.Recurrence) > 0 {
		event.Recurrence = input.Recurrence
	}

	if input.AddConference {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: input.ConferenceRequestID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		}
	}

	return event
}

// buildEventPatch converts an EventInput into a sparse patch document.
// Zero-value fields are omitted so the API leaves them unchanged.
func buildEventPatch(input EventInput) *calendar.Event {
	patch := &calendar.Event{}

	if input.Summary != "" {
		patch.Summary = input.Summary
	}
	if input.Description != "" {
		patch.Description = input.Description
	}
	if input.Location != "" {
		patch.Location = input.Location
	}
	if !input.Start.IsZero() {
		patch.Start = &calendar.EventDateTime{
			DateTime: input.Start.Format(timeFormatRFC3339),
			TimeZone: input.TimeZone,
		}
	}
	if !input.End.IsZero() {
		patch.End = &calendar.EventDateTime{
			DateTime: input.End.Format(timeFormatRFC3339),
			TimeZone: input.TimeZone,
		}
	}
	for _, email := range input.Attendees {
		patch.Attendees = append(patch.Attendees, &calendar.EventAttendee{Email: email})
	}
	if len(input.Recurrence) > 0 {
		patch.Recurrence = input.Recurrence
	}

	return patch
}

// toEventSummary converts a Google Calendar event to an EventSummary.
func toEventSummary(event *calendar.Event) EventSummary {
	summary := EventSummary{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
		HTMLLink:    event.HtmlLink,
		Recurrence:  event.Recurrence,
	}

	if event.Start != nil {
		summary.Start = parseEventTime(event.Start)
	}
	if event.End != nil {
		summary.End = parseEventTime(event.End)
	}

	if event.Creator != nil {
		summary.Creator = event.Creator.Email
	}
	if event.Organizer != nil {
		summary.Organizer = event.Organizer.Email
	}

	for _, att := range event.Attendees {
		summary.Attendees = append(summary.Attendees, AttendeeInfo{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
			Optional:       att.Optional,
			Organizer:      att.Organizer,
		})
	}

	summary.MeetLink = meetLink(event)

	return summary
}

// meetLink extracts the video entry point URI, falling back to the legacy
// hangout link.
func meetLink(event *calendar.Event) string {
	if event.ConferenceData != nil {
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "video" {
				return ep.Uri
			}
		}
	}
	return event.HangoutLink
}

// parseEventTime handles both timed (dateTime) and all-day (date) values.
func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseTimeRange converts a pair of RFC 3339 strings into a TimeRange.
func parseTimeRange(start, end string) TimeRange {
	var tr TimeRange
	if t, err := time.Parse(time.RFC3339, start); err == nil {
		tr.Start = t
	}
	if t, err := time.Parse(time.RFC3339, end); err == nil {
		tr.End = t
	}
	return tr
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo.
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
