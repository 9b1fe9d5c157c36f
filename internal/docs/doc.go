// Package docs provides a client for the Google Docs API.
//
// The client covers document creation, listing via Drive, text insertion
// and replacement, character formatting, raw batch updates and sharing.
// Document content can be rendered as plain text or Markdown, including
// tabbed documents.
//
// Clients are constructed from pre-resolved credential options:
//
//	opts, err := factory.ClientOptions(ctx, google.DocsScopes)
//	if err != nil {
//	    return err
//	}
//	client, err := docs.NewClient(ctx, folderID, opts...)
package docs
