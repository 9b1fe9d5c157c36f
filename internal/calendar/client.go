package calendar

import (
	"context"
	"errors"
	"fmt"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar service.
type Client struct {
	svc *calendar.Service
}

// NewClient creates a Calendar client from pre-resolved client options.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// CreateCalendar creates a new secondary calendar.
func (c *Client) CreateCalendar(ctx context.Context, input CalendarInput) (*CalendarInfo, error) {
	cal := &calendar.Calendar{
		Summary:     input.Summary,
		Description: input.Description,
		TimeZone:    input.TimeZone,
	}

	created, err := c.svc.Calendars.Insert(cal).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}

	return &CalendarInfo{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		TimeZone:    created.TimeZone,
	}, nil
}

// GetCalendar retrieves calendar metadata by ID.
func (c *Client) GetCalendar(ctx context.Context, calendarID string) (*CalendarInfo, error) {
	cal, err := c.svc.Calendars.Get(calendarID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}

	return &CalendarInfo{
		ID:          cal.Id,
		Summary:     cal.Summary,
		Description: cal.Description,
		TimeZone:    cal.TimeZone,
	}, nil
}

// UpdateCalendar updates mutable metadata of a calendar. Empty input fields
// are left unchanged.
func (c *Client) UpdateCalendar(ctx context.Context, calendarID string, input CalendarInput) (*CalendarInfo, error) {
	patch := &calendar.Calendar{}
	if input.Summary != "" {
		patch.Summary = input.Summary
	}
	if input.Description != "" {
		patch.Description = input.Description
	}
	if input.TimeZone != "" {
		patch.TimeZone = input.TimeZone
	}

	updated, err := c.svc.Calendars.Patch(calendarID, patch).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar: %w", err)
	}

	return &CalendarInfo{
		ID:          updated.Id,
		Summary:     updated.Summary,
		Description: updated.Description,
		TimeZone:    updated.TimeZone,
	}, nil
}

// DeleteCalendar deletes a secondary calendar. The primary calendar cannot
// be deleted.
func (c *Client) DeleteCalendar(ctx context.Context, calendarID string) error {
	if err := c.svc.Calendars.Delete(calendarID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar: %w", err)
	}
	return nil
}

// ListCalendars lists all calendars visible to the authenticated user.
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	var calendars []CalendarInfo

	err := c.svc.CalendarList.List().Pages(ctx, func(resp *calendar.CalendarList) error {
		for _, entry := range resp.Items {
			calendars = append(calendars, toCalendarInfo(entry))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	return calendars, nil
}

// ShareCalendar grants a user access to a calendar via an ACL rule.
// Role is one of "reader", "writer", "owner" or "freeBusyReader".
func (c *Client) ShareCalendar(ctx context.Context, calendarID, email, role string) (*AclRuleInfo, error) {
	rule := &calendar.AclRule{
		Role: role,
		Scope: &calendar.AclRuleScope{
			Type:  "user",
			Value: email,
		},
	}

	created, err := c.svc.Acl.Insert(calendarID, rule).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to share calendar: %w", err)
	}

	return &AclRuleInfo{
		ID:    created.Id,
		Role:  created.Role,
		Email: email,
	}, nil
}

// CreateEvent creates an event on the given calendar.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, input EventInput) (*EventSummary, error) {
	event := buildEvent(input)

	call := c.svc.Events.Insert(calendarID, event).Context(ctx)
	if input.SendUpdates != "" {
		call = call.SendUpdates(input.SendUpdates)
	}
	if event.ConferenceData != nil {
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	summary := toEventSummary(created)
	return &summary, nil
}

// GetEvent retrieves a single event.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*EventSummary, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	summary := toEventSummary(event)
	return &summary, nil
}

// UpdateEvent patches an event. Only non-zero input fields are changed.
func (c *Client) UpdateEvent(ctx context.Context, calendarID, eventID string, input EventInput) (*EventSummary, error) {
	patch := buildEventPatch(input)

	call := c.svc.Events.Patch(calendarID, eventID, patch).Context(ctx)
	if input.SendUpdates != "" {
		call = call.SendUpdates(input.SendUpdates)
	}

	updated, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	summary := toEventSummary(updated)
	return &summary, nil
}

// DeleteEvent deletes an event. sendUpdates controls attendee notification
// ("all", "externalOnly", "none"); empty means the API default.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID, sendUpdates string) error {
	call := c.svc.Events.Delete(calendarID, eventID).Context(ctx)
	if sendUpdates != "" {
		call = call.SendUpdates(sendUpdates)
	}

	if err := call.Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ListEvents lists events on a calendar, filtered by the given options.
// Recurring events are expanded into single instances ordered by start time.
func (c *Client) ListEvents(ctx context.Context, calendarID string, opts ListEventsOptions) ([]EventSummary, error) {
	call := c.svc.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime")

	if !opts.TimeMin.IsZero() {
		call = call.TimeMin(opts.TimeMin.Format(timeFormatRFC3339))
	}
	if !opts.TimeMax.IsZero() {
		call = call.TimeMax(opts.TimeMax.Format(timeFormatRFC3339))
	}
	if opts.Query != "" {
		call = call.Q(opts.Query)
	}
	if opts.MaxResults > 0 {
		call = call.MaxResults(opts.MaxResults)
	}

	var events []EventSummary
	err := call.Pages(ctx, func(resp *calendar.Events) error {
		for _, event := range resp.Items {
			events = append(events, toEventSummary(event))
		}
		if opts.MaxResults > 0 && int64(len(events)) >= opts.MaxResults {
			events = events[:opts.MaxResults]
			return errStopPaging
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopPaging) {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// QuickAddEvent creates an event from a natural-language description,
// e.g. "Lunch with Ana tomorrow at noon".
func (c *Client) QuickAddEvent(ctx context.Context, calendarID, text string) (*EventSummary, error) {
	created, err := c.svc.Events.QuickAdd(calendarID, text).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to quick-add event: %w", err)
	}

	summary := toEventSummary(created)
	return &summary, nil
}

// MoveEvent moves an event to another calendar.
func (c *Client) MoveEvent(ctx context.Context, calendarID, eventID, destinationCalendarID string) (*EventSummary, error) {
	moved, err := c.svc.Events.Move(calendarID, eventID, destinationCalendarID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to move event: %w", err)
	}

	summary := toEventSummary(moved)
	return &summary, nil
}

// ImportEvent imports an event with a known iCalendar UID, bypassing
// invitation semantics. Used to copy events between accounts.
func (c *Client) ImportEvent(ctx context.Context, calendarID string, input EventInput) (*EventSummary, error) {
	if input.ICalUID == "" {
		return nil, fmt.Errorf("iCalUID is required to import an event")
	}

	event := buildEvent(input)
	event.ICalUID = input.ICalUID

	imported, err := c.svc.Events.Import(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to import event: %w", err)
	}

	summary := toEventSummary(imported)
	return &summary, nil
}

// FreeBusy queries busy intervals for the given calendars in a time window.
func (c *Client) FreeBusy(ctx context.Context, timeMin, timeMax string, calendarIDs []string) ([]FreeBusyInfo, error) {
	req := &calendar.FreeBusyRequest{
		TimeMin: timeMin,
		TimeMax: timeMax,
	}
	for _, id := range calendarIDs {
		req.Items = append(req.Items, &calendar.FreeBusyRequestItem{Id: id})
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query free/busy: %w", err)
	}

	var infos []FreeBusyInfo
	for id, cal := range resp.Calendars {
		info := FreeBusyInfo{Calendar: id}
		for _, busy := range cal.Busy {
			info.Busy = append(info.Busy, parseTimeRange(busy.Start, busy.End))
		}
		for _, calErr := range cal.Errors {
			info.Errors = append(info.Errors, calErr.Reason)
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// errStopPaging stops Pages iteration once MaxResults entries are collected.
var errStopPaging = errors.New("stop paging")
