package docs

import (
	"fmt"
	"strings"

	docs "google.golang.org/api/docs/v1"
)

// DocumentInfo represents metadata about a Google Docs document.
type DocumentInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	RevisionID string `json:"revisionId,omitempty"`
	URL        string `json:"url"`
}

// DocumentListEntry represents one document in a listing, sourced from
// Drive metadata.
type DocumentListEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CreatedTime  string `json:"createdTime,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	WebViewLink  string `json:"webViewLink,omitempty"`
}

// TextStyleInput describes character formatting for FormatText. Nil
// pointer fields leave the corresponding attribute untouched.
type TextStyleInput struct {
	Bold      *bool
	Italic    *bool
	Underline *bool

	// FontSize in points. Zero leaves the size unchanged.
	FontSize float64
}

// toDocumentInfo converts an API document to a DocumentInfo.
func toDocumentInfo(doc *docs.Document) *DocumentInfo {
	return &DocumentInfo{
		ID:         doc.DocumentId,
		Title:      doc.Title,
		RevisionID: doc.RevisionId,
		URL:        fmt.Sprintf("https://docs.google.com/document/d/%s/edit", doc.DocumentId),
	}
}

// buildTextStyle converts a TextStyleInput into an API text style plus the
// field mask naming the attributes to change.
func buildTextStyle(input TextStyleInput) (*docs.TextStyle, string) {
	style := &docs.TextStyle{}
	var fields []string

	if input.Bold != nil {
		style.Bold = *input.Bold
		style.ForceSendFields = append(style.ForceSendFields, "Bold")
		fields = append(fields, "bold")
	}
	if input.Italic != nil {
		style.Italic = *input.Italic
		style.ForceSendFields = append(style.ForceSendFields, "Italic")
		fields = append(fields, "italic")
	}
	if input.Underline != nil {
		style.Underline = *input.Underline
		style.ForceSendFields = append(style.ForceSendFields, "Underline")
		fields = append(fields, "underline")
	}
	if input.FontSize > 0 {
		style.FontSize = &docs.Dimension{
			Magnitude: input.FontSize,
			Unit:      "PT",
		}
		fields = append(fields, "fontSize")
	}

	return style, strings.Join(fields, ",")
}

// escapeQueryTerm escapes single quotes in a Drive query term.
func escapeQueryTerm(term string) string {
	return strings.ReplaceAll(term, "'", `\'`)
}
