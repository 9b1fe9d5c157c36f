// Package drive provides a client for the Google Drive API.
//
// The client covers file search, folder creation, uploads, moves, renames,
// deletion, content download (with plain-text export for Google-native
// document types) and permission management.
//
// Clients are constructed from pre-resolved credential options:
//
//	opts, err := factory.ClientOptions(ctx, google.DriveScopes)
//	if err != nil {
//	    return err
//	}
//	client, err := drive.NewClient(ctx, opts...)
package drive
