// Package gmail provides a client for the Gmail API.
//
// The client covers message retrieval and search, sending with reply and
// forward threading, attachment download, label management, thread listing
// and batch message modification and deletion.
//
// Clients are constructed from pre-resolved credential options:
//
//	opts, err := factory.ClientOptions(ctx, google.GmailScopes)
//	if err != nil {
//	    return err
//	}
//	client, err := gmail.NewClient(ctx, opts...)
package gmail
