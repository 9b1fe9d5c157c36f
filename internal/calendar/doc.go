// Package calendar provides a client for the Google Calendar API.
//
// The client covers calendar management (create, update, delete, list,
// share) and event operations including quick-add from natural language,
// cross-calendar moves, iCalendar imports and free/busy queries.
//
// Clients are constructed from pre-resolved credential options:
//
//	opts, err := factory.ClientOptions(ctx, google.CalendarScopes)
//	if err != nil {
//	    return err
//	}
//	client, err := calendar.NewClient(ctx, opts...)
package calendar
