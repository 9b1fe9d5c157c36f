// Package meet manages Google Meet meetings through the Calendar API.
//
// Scheduled Meet meetings are Calendar events with conference data
// attached; the Meet REST API has no write surface for them. The client
// covers meeting creation with an auto-generated Meet link, attendee
// management including response status updates, join information lookup
// and invitation sharing.
//
// Clients are constructed from pre-resolved credential options:
//
//	opts, err := factory.ClientOptions(ctx, google.MeetScopes)
//	if err != nil {
//	    return err
//	}
//	client, err := meet.NewClient(ctx, opts...)
package meet
