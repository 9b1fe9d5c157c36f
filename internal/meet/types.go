package meet

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

const timeFormat = time.RFC3339

// MeetingInput represents the input for creating or updating a meeting.
type MeetingInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []string

	// GuestsCanModify allows invited guests to edit the meeting.
	GuestsCanModify bool
}

// ListMeetingsOptions filters a meeting listing.
type ListMeetingsOptions struct {
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Meeting represents a scheduled meeting with a Meet conference.
type Meeting struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	MeetLink    string
	Organizer   string
	Status      string
	Attendees   []Attendee
}

// Attendee represents a meeting participant.
type Attendee struct {
	Email          string
	DisplayName    string
	ResponseStatus string
	Optional       bool
	Organizer      bool
}

// JoinInfo holds everything a participant needs to join a meeting.
type JoinInfo struct {
	MeetingID    string
	Summary      string
	MeetLink     string
	ConferenceID string
	PhoneNumbers []PhoneEntry
}

// PhoneEntry is a dial-in entry point.
type PhoneEntry struct {
	Number string
	PIN    string
	Region string
}

// toMeeting converts a Calendar event to a Meeting.
func toMeeting(event *calendar.Event) Meeting {
	meeting := Meeting{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Status:      event.Status,
		MeetLink:    meetLink(event),
	}

	if event.Start != nil && event.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
			meeting.Start = t
		}
	}
	if event.End != nil && event.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
			meeting.End = t
		}
	}
	if event.Organizer != nil {
		meeting.Organizer = event.Organizer.Email
	}

	for _, att := range event.Attendees {
		meeting.Attendees = append(meeting.Attendees, Attendee{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
			Optional:       att.Optional,
			Organizer:      att.Organizer,
		})
	}

	return meeting
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

// hasMeetLink reports whether an event carries a Meet conference.
func hasMeetLink(event *calendar.Event) bool {
	return meetLink(event) != ""
}
