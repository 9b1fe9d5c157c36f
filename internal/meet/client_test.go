package meet

import (
	"testing"
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

func TestToMeeting(t *testing.T) {
	event := &calendar.Event{
		Id:          "mtg-1",
		Summary:     "Design review",
		Description: "Weekly design review",
		Status:      "confirmed",
		Start:       &calendar.EventDateTime{DateTime: "2026-09-03T15:00:00Z"},
		End:         &calendar.EventDateTime{DateTime: "2026-09-03T16:00:00Z"},
		Organizer:   &calendar.EventOrganizer{Email: "host@example.com"},
		Attendees: []*calendar.EventAttendee{
			{Email: "host@example.com", Organizer: true, ResponseStatus: "accepted"},
			{Email: "guest@example.com", ResponseStatus: "needsAction", Optional: true},
		},
		ConferenceData: &calendar.ConferenceData{
			ConferenceId: "abc-defg-hij",
			EntryPoints: []*calendar.EntryPoint{
				{EntryPointType: "video", Uri: "https://meet.google.com/abc-defg-hij"},
			},
		},
	}

	meeting := toMeeting(event)

	if meeting.ID != "mtg-1" {
		t.Errorf("unexpected ID: %s", meeting.ID)
	}
	if meeting.MeetLink != "https://meet.google.com/abc-defg-hij" {
		t.Errorf("unexpected meet link: %s", meeting.MeetLink)
	}
	if meeting.Organizer != "host@example.com" {
		t.Errorf("unexpected organizer: %s", meeting.Organizer)
	}
	if len(meeting.Attendees) != 2 {
		t.Fatalf("expected 2 attendees, got %d", len(meeting.Attendees))
	}
	if !meeting.Attendees[1].Optional {
		t.Error("expected second attendee optional")
	}
	want := time.Date(2026, 9, 3, 15, 0, 0, 0, time.UTC)
	if !meeting.Start.Equal(want) {
		t.Errorf("expected start %v, got %v", want, meeting.Start)
	}
}

func TestHasMeetLink(t *testing.T) {
	tests := []struct {
		name  string
		event *calendar.Event
		want  bool
	}{
		{
			name: "video entry point",
			event: &calendar.Event{
				ConferenceData: &calendar.ConferenceData{
					EntryPoints: []*calendar.EntryPoint{
						{EntryPointType: "video", Uri: "https://meet.google.com/x"},
					},
				},
			},
			want: true,
		},
		{
			name:  "legacy hangout link",
			event: &calendar.Event{HangoutLink: "https://meet.google.com/y"},
			want:  true,
		},
		{
			name: "phone entry point only",
			event: &calendar.Event{
				ConferenceData: &calendar.ConferenceData{
					EntryPoints: []*calendar.EntryPoint{
						{EntryPointType: "phone", Uri: "tel:+1-555-0100"},
					},
				},
			},
			want: false,
		},
		{
			name:  "plain event",
			event: &calendar.Event{},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasMeetLink(tt.event); got != tt.want {
				t.Errorf("hasMeetLink() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestValidResponseStatus(t *testing.T) {
	for _, status := range []string{"accepted", "declined", "tentative", "needsAction"} {
		if !validResponseStatus(status) {
			t.Errorf("expected %q valid", status)
		}
	}
	for _, status := range []string{"", "maybe", "ACCEPTED"} {
		if validResponseStatus(status) {
			t.Errorf("expected %q invalid", status)
		}
	}
}
