// Package sheets provides a client for the Google Sheets API.
//
// The client covers spreadsheet creation and listing via Drive, cell
// range reads and writes in A1 notation, row appends, range clearing,
// sheet management and sharing.
//
// Clients are constructed from pre-resolved credential options:
//
//	opts, err := factory.ClientOptions(ctx, google.SheetsScopes)
//	if err != nil {
//	    return err
//	}
//	client, err := sheets.NewClient(ctx, folderID, opts...)
package sheets
