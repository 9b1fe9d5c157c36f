package calendar

import (
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

func TestToEventSummary(t *testing.T) {
	event := &calendar.Event{
		Id:          "evt-1",
		Summary:     "Planning",
		Description: "Quarterly planning",
		Location:    "Room 4",
		Status:      "confirmed",
		HtmlLink:    "https://calendar.google.com/event?eid=abc",
		Start:       &calendar.EventDateTime{DateTime: "2026-09-01T10:00:00Z"},
		End:         &calendar.EventDateTime{DateTime: "2026-09-01T11:00:00Z"},
		Creator:     &calendar.EventCreator{Email: "creator@example.com"},
		Organizer:   &calendar.EventOrganizer{Email: "organizer@example.com"},
		Attendees: []*calendar.EventAttendee{
			{Email: "a@example.com", ResponseStatus: "accepted", Organizer: true},
			{Email: "b@example.com", ResponseStatus: "needsAction", Optional: true},
		},
		ConferenceData: &calendar.ConferenceData{
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		},
	}

	summary := toEventSummary(event)

	if summary.ID != "evt-1" {
		t.Errorf("expected ID evt-1, got %s", summary.ID)
	}
	if summary.Creator != "creator@example.com" {
		t.Errorf("unexpected creator: %s", summary.Creator)
	}
	if summary.Organizer != "organizer@example.com" {
		t.Errorf("unexpected organizer: %s", summary.Organizer)
	}
	if len(summary.Attendees) != 2 {
		t.Fatalf("expected 2 attendees, got %d", len(summary.Attendees))
	}
	if !summary.Attendees[0].Organizer {
		t.Error("expected first attendee to be the organizer")
	}
	if summary.MeetLink != "https://meet.google.com/abc-defg-hij" {
		t.Errorf("expected video entry point as meet link, got %s", summary.MeetLink)
	}
	want := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	if !summary.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, summary.Start)
	}
}

func TestToEventSummaryAllDayEvent(t *testing.T) {
	event := &calendar.Event{
		Id:    "evt-2",
		Start: &calendar.EventDateTime{Date: "2026-09-15"},
		End:   &calendar.EventDateTime{Date: "2026-09-16"},
	}

	summary := toEventSummary(event)

	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if !summary.Start.Equal(want) {
		t.Errorf("expected all-day start %v, got %v", want, summary.Start)
	}
}

func TestMeetLinkFallsBackToHangoutLink(t *testing.T) {
	event := &calendar.Event{
		Id:          "evt-3",
		HangoutLink: "https://meet.google.com/legacy-link",
	}

	if got := meetLink(event); got != "https://meet.google.com/legacy-link" {
		t.Errorf("expected hangout link fallback, got %s", got)
	}
}

func TestBuildEvent(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	input := EventInput{
		Summary:     "Sync",
		Description: "Weekly sync",
		Location:    "HQ",
		Start:       start,
		End:         start.Add(30 * time.Minute),
		TimeZone:    "Europe/Berlin",
		Attendees:   []string{"a@example.com", "b@example.com"},
		Recurrence:  []string{"RRULE:FREQ=WEEKLY;BYDAY=MO"},
	}

	event := buildEvent(input)

	if event.Summary != "Sync" {
		t.Errorf("unexpected summary: %s", event.Summary)
	}
	if event.Start == nil || event.Start.DateTime != "2026-09-01T14:00:00Z" {
		t.Errorf("unexpected start: %+v", event.Start)
	}
	if event.Start.TimeZone != "Europe/Berlin" {
		t.Errorf("unexpected time zone: %s", event.Start.TimeZone)
	}
	if len(event.Attendees) != 2 {
		t.Errorf("expected 2 attendees, got %d", len(event.Attendees))
	}
	if len(event.Recurrence) != 1 {
		t.Errorf("expected 1 recurrence rule, got %d", len(event.Recurrence))
	}
	if event.ConferenceData != nil {
		t.Error("expected no conference data without AddConference")
	}
}

func TestBuildEventWithConference(t *testing.T) {
	input := EventInput{
		Summary:             "Video call",
		Start:               time.Now(),
		End:                 time.Now().Add(time.Hour),
		AddConference:       true,
		ConferenceRequestID: "req-123",
	}

	event := buildEvent(input)

	if event.ConferenceData == nil || event.ConferenceData.CreateRequest == nil {
		t.Fatal("expected a conference create request")
	}
	if event.ConferenceData.CreateRequest.RequestId != "req-123" {
		t.Errorf("unexpected request id: %s", event.ConferenceData.CreateRequest.RequestId)
	}
	if event.ConferenceData.CreateRequest.ConferenceSolutionKey.Type != "hangoutsMeet" {
		t.Errorf("unexpected solution key: %s", event.ConferenceData.CreateRequest.ConferenceSolutionKey.Type)
	}
}

func TestBuildEventPatchOmitsZeroFields(t *testing.T) {
	patch := buildEventPatch(EventInput{Summary: "New title"})

	if patch.Summary != "New title" {
		t.Errorf("unexpected summary: %s", patch.Summary)
	}
	if patch.Start != nil || patch.End != nil {
		t.Error("expected zero time fields to be omitted from patch")
	}
	if patch.Attendees != nil {
		t.Error("expected attendees to be omitted from patch")
	}
}

func TestToCalendarInfo(t *testing.T) {
	entry := &calendar.CalendarListEntry{
		Id:         "primary",
		Summary:    "Work",
		TimeZone:   "America/New_York",
		Primary:    true,
		AccessRole: "owner",
	}

	info := toCalendarInfo(entry)

	if info.ID != "primary" || !info.Primary || info.AccessRole != "owner" {
		t.Errorf("unexpected calendar info: %+v", info)
	}
}

func TestParseTimeRange(t *testing.T) {
	tr := parseTimeRange("2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z")

	if tr.Start.IsZero() || tr.End.IsZero() {
		t.Fatal("expected both bounds parsed")
	}
	if !tr.End.After(tr.Start) {
		t.Error("expected end after start")
	}

	empty := parseTimeRange("garbage", "")
	if !empty.Start.IsZero() || !empty.End.IsZero() {
		t.Error("expected zero times for unparsable input")
	}
}
