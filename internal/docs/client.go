package docs

import (
	"context"
	"encoding/json"
	"fmt"

	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// documentMimeType is the Drive MIME type for Google Docs documents.
const documentMimeType = "application/vnd.google-apps.document"

// Client wraps the Google Docs and Drive API services. Drive is used for
// listing, sharing and folder placement of documents.
type Client struct {
	svc      *docs.Service
	driveSvc *drive.Service

	// folderID is the parent folder for newly created documents.
	// Empty means the Drive root.
	folderID string
}

// NewClient creates a Docs client from pre-resolved client options.
// folderID, when non-empty, parents every created document.
func NewClient(ctx context.Context, folderID string, opts ...option.ClientOption) (*Client, error) {
	svc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}

	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		svc:      svc,
		driveSvc: driveSvc,
		folderID: folderID,
	}, nil
}

// CreateDocument creates an empty document with the given title. When the
// client is configured with a parent folder, the document is moved there.
func (c *Client) CreateDocument(ctx context.Context, title string) (*DocumentInfo, error) {
	created, err := c.svc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	if c.folderID != "" {
		_, err := c.driveSvc.Files.Update(created.DocumentId, nil).
			AddParents(c.folderID).
			RemoveParents("root").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to move document to folder: %w", err)
		}
	}

	return toDocumentInfo(created), nil
}

// GetDocument retrieves document metadata.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*DocumentInfo, error) {
	doc, err := c.svc.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return toDocumentInfo(doc), nil
}

// ListDocuments lists Google Docs documents, optionally filtered by a name
// substring.
func (c *Client) ListDocuments(ctx context.Context, nameQuery string, maxResults int64) ([]DocumentListEntry, error) {
	query := fmt.Sprintf("mimeType='%s' and trashed=false", documentMimeType)
	if nameQuery != "" {
		query += fmt.Sprintf(" and name contains '%s'", escapeQueryTerm(nameQuery))
	}

	call := c.driveSvc.Files.List().
		Q(query).
		Fields("files(id, name, createdTime, modifiedTime, webViewLink)").
		OrderBy("modifiedTime desc")
	if maxResults > 0 {
		call = call.PageSize(maxResults)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var entries []DocumentListEntry
	for _, f := range resp.Files {
		entries = append(entries, DocumentListEntry{
			ID:           f.Id,
			Name:         f.Name,
			CreatedTime:  f.CreatedTime,
			ModifiedTime: f.ModifiedTime,
			WebViewLink:  f.WebViewLink,
		})
	}

	return entries, nil
}

// GetContent retrieves document content as plain text or Markdown.
// format is "text" or "markdown".
func (c *Client) GetContent(ctx context.Context, documentID, format string) (string, error) {
	doc, err := c.svc.Documents.Get(documentID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get document: %w", err)
	}

	switch format {
	case "", "text":
		return DocumentToPlainText(doc)
	case "markdown":
		return DocumentToMarkdown(doc)
	default:
		return "", fmt.Errorf("unsupported content format %q", format)
	}
}

// InsertText inserts text at a body index. Index 0 means the start of the
// body (mapped to the API's minimum insertion index of 1).
func (c *Client) InsertText(ctx context.Context, documentID, text string, index int64) error {
	if index < 1 {
		index = 1
	}

	req := &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Text:     text,
			Location: &docs.Location{Index: index},
		},
	}

	return c.batchUpdate(ctx, documentID, []*docs.Request{req})
}

// AppendParagraph appends a paragraph of text at the end of the document
// body.
func (c *Client) AppendParagraph(ctx context.Context, documentID, text string) error {
	req := &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Text: "\n" + text,
			EndOfSegmentLocation: &docs.EndOfSegmentLocation{
				SegmentId: "",
			},
		},
	}

	return c.batchUpdate(ctx, documentID, []*docs.Request{req})
}

// ReplaceText replaces all occurrences of a string and returns the number
// of replacements made.
func (c *Client) ReplaceText(ctx context.Context, documentID, find, replace string, matchCase bool) (int64, error) {
	req := &docs.Request{
		ReplaceAllText: &docs.ReplaceAllTextRequest{
			ReplaceText: replace,
			ContainsText: &docs.SubstringMatchCriteria{
				Text:      find,
				MatchCase: matchCase,
			},
		},
	}

	resp, err := c.svc.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{req},
	}).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to replace text: %w", err)
	}

	var occurrences int64
	if len(resp.Replies) > 0 && resp.Replies[0].ReplaceAllText != nil {
		occurrences = resp.Replies[0].ReplaceAllText.OccurrencesChanged
	}

	return occurrences, nil
}

// FormatText applies character formatting to the body range [start, end).
func (c *Client) FormatText(ctx context.Context, documentID string, start, end int64, style TextStyleInput) error {
	textStyle, fields := buildTextStyle(style)
	if fields == "" {
		return fmt.Errorf("no formatting attributes specified")
	}

	req := &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range: &docs.Range{
				StartIndex:      start,
				EndIndex:        end,
				ForceSendFields: []string{"StartIndex"},
			},
			TextStyle: textStyle,
			Fields:    fields,
		},
	}

	return c.batchUpdate(ctx, documentID, []*docs.Request{req})
}

// BatchUpdate applies raw Docs API update requests, given as a JSON array
// of request objects. Returns the number of requests applied.
func (c *Client) BatchUpdate(ctx context.Context, documentID, requestsJSON string) (int, error) {
	var requests []*docs.Request
	if err := json.Unmarshal([]byte(requestsJSON), &requests); err != nil {
		return 0, fmt.Errorf("failed to parse update requests: %w", err)
	}
	if len(requests) == 0 {
		return 0, fmt.Errorf("no update requests given")
	}

	if err := c.batchUpdate(ctx, documentID, requests); err != nil {
		return 0, err
	}

	return len(requests), nil
}

// ShareDocument grants a user access to a document via Drive permissions.
// Role is one of "reader", "commenter" or "writer".
func (c *Client) ShareDocument(ctx context.Context, documentID, email, role string, sendNotification bool) error {
	perm := &drive.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}

	_, err := c.driveSvc.Permissions.Create(documentID, perm).
		SendNotificationEmail(sendNotification).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to share document: %w", err)
	}

	return nil
}

func (c *Client) batchUpdate(ctx context.Context, documentID string, requests []*docs.Request) error {
	_, err := c.svc.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to apply document update: %w", err)
	}
	return nil
}
