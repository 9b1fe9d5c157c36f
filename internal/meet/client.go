package meet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client manages Google Meet meetings as Calendar events carrying
// conference data. The Meet REST API has no write surface for scheduled
// meetings; the Calendar API is the system of record.
type Client struct {
	svc *calendar.Service

	// calendarID is the calendar meetings are scheduled on.
	calendarID string
}

// NewClient creates a Meet client from pre-resolved client options.
// Meetings are managed on the user's primary calendar.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &Client{svc: svc, calendarID: "primary"}, nil
}

// CreateMeeting schedules a meeting with a Google Meet conference attached.
func (c *Client) CreateMeeting(ctx context.Context, input MeetingInput) (*Meeting, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(timeFormat),
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(timeFormat),
			TimeZone: input.TimeZone,
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}
	for _, email := range input.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}
	if input.GuestsCanModify {
		event.GuestsCanModify = true
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	meeting := toMeeting(created)
	return &meeting, nil
}

// GetMeeting retrieves a meeting by event ID.
func (c *Client) GetMeeting(ctx context.Context, meetingID string) (*Meeting, error) {
	event, err := c.svc.Events.Get(c.calendarID, meetingID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	meeting := toMeeting(event)
	return &meeting, nil
}

// UpdateMeeting patches meeting details. Zero-value input fields are left
// unchanged.
func (c *Client) UpdateMeeting(ctx context.Context, meetingID string, input MeetingInput) (*Meeting, error) {
	patch := &calendar.Event{}
	if input.Summary != "" {
		patch.Summary = input.Summary
	}
	if input.Description != "" {
		patch.Description = input.Description
	}
	if !input.Start.IsZero() {
		patch.Start = &calendar.EventDateTime{
			DateTime: input.Start.Format(timeFormat),
			TimeZone: input.TimeZone,
		}
	}
	if !input.End.IsZero() {
		patch.End = &calendar.EventDateTime{
			DateTime: input.End.Format(timeFormat),
			TimeZone: input.TimeZone,
		}
	}

	updated, err := c.svc.Events.Patch(c.calendarID, meetingID, patch).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	meeting := toMeeting(updated)
	return &meeting, nil
}

// DeleteMeeting cancels a meeting, notifying all attendees.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID string) error {
	err := c.svc.Events.Delete(c.calendarID, meetingID).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}

// ListMeetings lists upcoming events carrying a Meet link in the given
// time window.
func (c *Client) ListMeetings(ctx context.Context, opts ListMeetingsOptions) ([]Meeting, error) {
	call := c.svc.Events.List(c.calendarID).
		SingleEvents(true).
		OrderBy("startTime")

	if !opts.TimeMin.IsZero() {
		call = call.TimeMin(opts.TimeMin.Format(timeFormat))
	}
	if !opts.TimeMax.IsZero() {
		call = call.TimeMax(opts.TimeMax.Format(timeFormat))
	}

	var meetings []Meeting
	err := call.Pages(ctx, func(resp *calendar.Events) error {
		for _, event := range resp.Items {
			if !hasMeetLink(event) {
				continue
			}
			meetings = append(meetings, toMeeting(event))
			if opts.MaxResults > 0 && int64(len(meetings)) >= opts.MaxResults {
				return errStopPaging
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	return meetings, nil
}

// AddAttendee invites a participant to an existing meeting.
func (c *Client) AddAttendee(ctx context.Context, meetingID, email string, optional bool) (*Meeting, error) {
	event, err := c.svc.Events.Get(c.calendarID, meetingID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	for _, att := range event.Attendees {
		if att.Email == email {
			return nil, fmt.Errorf("%s is already an attendee", email)
		}
	}
	event.Attendees = append(event.Attendees, &calendar.EventAttendee{
		Email:    email,
		Optional: optional,
	})

	updated, err := c.patchAttendees(ctx, meetingID, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to add attendee: %w", err)
	}

	meeting := toMeeting(updated)
	return &meeting, nil
}

// RemoveAttendee removes a participant from a meeting.
func (c *Client) RemoveAttendee(ctx context.Context, meetingID, email string) (*Meeting, error) {
	event, err := c.svc.Events.Get(c.calendarID, meetingID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	remaining := event.Attendees[:0]
	found := false
	for _, att := range event.Attendees {
		if att.Email == email {
			found = true
			continue
		}
		remaining = append(remaining, att)
	}
	if !found {
		return nil, fmt.Errorf("%s is not an attendee", email)
	}

	updated, err := c.patchAttendees(ctx, meetingID, remaining)
	if err != nil {
		return nil, fmt.Errorf("failed to remove attendee: %w", err)
	}

	meeting := toMeeting(updated)
	return &meeting, nil
}

// UpdateAttendeeStatus sets a participant's response status:
// "accepted", "declined", "tentative" or "needsAction".
func (c *Client) UpdateAttendeeStatus(ctx context.Context, meetingID, email, status string) (*Meeting, error) {
	if !validResponseStatus(status) {
		return nil, fmt.Errorf("invalid response status %q", status)
	}

	event, err := c.svc.Events.Get(c.calendarID, meetingID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	found := false
	for _, att := range event.Attendees {
		if att.Email == email {
			att.ResponseStatus = status
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%s is not an attendee", email)
	}

	updated, err := c.patchAttendees(ctx, meetingID, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to update attendee status: %w", err)
	}

	meeting := toMeeting(updated)
	return &meeting, nil
}

// GetJoinInfo returns the joining details of a meeting: the Meet link and
// any phone entry points.
func (c *Client) GetJoinInfo(ctx context.Context, meetingID string) (*JoinInfo, error) {
	event, err := c.svc.Events.Get(c.calendarID, meetingID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	info := &JoinInfo{
		MeetingID: event.Id,
		Summary:   event.Summary,
		MeetLink:  meetLink(event),
	}
	if event.ConferenceData != nil {
		info.ConferenceID = event.ConferenceData.ConferenceId
		for _, ep := range event.ConferenceData.EntryPoints {
			if ep.EntryPointType == "phone" {
				info.PhoneNumbers = append(info.PhoneNumbers, PhoneEntry{
					Number: ep.Uri,
					PIN:    ep.Pin,
					Region: ep.RegionCode,
				})
			}
		}
	}

	if info.MeetLink == "" {
		return nil, fmt.Errorf("meeting %s has no Meet conference attached", meetingID)
	}

	return info, nil
}

// ShareMeeting invites additional participants and re-sends the invitation
// with the joining details.
func (c *Client) ShareMeeting(ctx context.Context, meetingID string, emails []string) (*Meeting, error) {
	if len(emails) == 0 {
		return nil, fmt.Errorf("at least one email is required")
	}

	event, err := c.svc.Events.Get(c.calendarID, meetingID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	existing := make(map[string]bool, len(event.Attendees))
	for _, att := range event.Attendees {
		existing[att.Email] = true
	}
	for _, email := range emails {
		if !existing[email] {
			event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
		}
	}

	updated, err := c.patchAttendees(ctx, meetingID, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to share meeting: %w", err)
	}

	meeting := toMeeting(updated)
	return &meeting, nil
}

func (c *Client) patchAttendees(ctx context.Context, meetingID string, attendees []*calendar.EventAttendee) (*calendar.Event, error) {
	return c.svc.Events.Patch(c.calendarID, meetingID, &calendar.Event{
		Attendees: attendees,
	}).SendUpdates("all").Context(ctx).Do()
}

func validResponseStatus(status string) bool {
	switch status {
	case "accepted", "declined", "tentative", "needsAction":
		return true
	}
	return false
}

// errStopPaging stops Pages iteration once MaxResults entries are collected.
var errStopPaging = errors.New("stop paging")
