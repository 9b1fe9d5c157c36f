package calendar_tools

import (
	"testing"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
)

func TestRegisterCalendarTools(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1")
	if err := RegisterCalendarTools(s, &server.ServerContext{}); err != nil {
		t.Fatalf("RegisterCalendarTools() error = %v", err)
	}
}

func TestEventInputFromArgsRequired(t *testing.T) {
	args := map[string]interface{}{
		"summary":       "Team sync",
		"start":         "2026-02-02T10:00:00Z",
		"end":           "2026-02-02T10:30:00Z",
		"attendees":     "a@example.com, b@example.com",
		"recurrence":    "RRULE:FREQ=WEEKLY",
		"sendUpdates":   "all",
		"addGoogleMeet": true,
	}

	input, errResult := eventInputFromArgs(args, true)
	if errResult != nil {
		t.Fatalf("unexpected error result: %v", errResult)
	}

	if input.Summary != "Team sync" {
		t.Errorf("Summary = %q", input.Summary)
	}
	want := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	if !input.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", input.Start, want)
	}
	if len(input.Attendees) != 2 || input.Attendees[1] != "b@example.com" {
		t.Errorf("Attendees = %v", input.Attendees)
	}
	if len(input.Recurrence) != 1 || input.Recurrence[0] != "RRULE:FREQ=WEEKLY" {
		t.Errorf("Recurrence = %v", input.Recurrence)
	}
	if input.SendUpdates != "all" {
		t.Errorf("SendUpdates = %q", input.SendUpdates)
	}
	if !input.AddConference {
		t.Error("expected AddConference set")
	}
}

func TestEventInputFromArgsMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"no summary", map[string]interface{}{"start": "2026-02-02T10:00:00Z", "end": "2026-02-02T11:00:00Z"}},
		{"no start", map[string]interface{}{"summary": "x", "end": "2026-02-02T11:00:00Z"}},
		{"bad start", map[string]interface{}{"summary": "x", "start": "tomorrow", "end": "2026-02-02T11:00:00Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, errResult := eventInputFromArgs(tt.args, true); errResult == nil {
				t.Error("expected error result")
			}
		})
	}
}

func TestEventInputFromArgsOptional(t *testing.T) {
	input, errResult := eventInputFromArgs(map[string]interface{}{"location": "HQ"}, false)
	if errResult != nil {
		t.Fatalf("unexpected error result: %v", errResult)
	}
	if input.Summary != "" || !input.Start.IsZero() || !input.End.IsZero() {
		t.Errorf("expected zero fields for absent args, got %+v", input)
	}
	if input.Location != "HQ" {
		t.Errorf("Location = %q", input.Location)
	}
}
