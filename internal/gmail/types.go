package gmail

import (
	"encoding/base64"
	"strings"
	"time"

	gmail "google.golang.org/api/gmail/v1"
)

// MessageSummary represents a Gmail message with parsed headers.
type MessageSummary struct {
	ID       string   `json:"id"`
	ThreadID string   `json:"threadId"`
	LabelIDs []string `json:"labelIds,omitempty"`
	Snippet  string   `json:"snippet,omitempty"`
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Date     string   `json:"date,omitempty"`
	Body     string   `json:"body,omitempty"`
}

// ThreadSummary represents a conversation thread.
type ThreadSummary struct {
	ID       string           `json:"id"`
	Snippet  string           `json:"snippet,omitempty"`
	Messages []MessageSummary `json:"messages,omitempty"`
}

// LabelInfo represents a Gmail label.
type LabelInfo struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Type                  string `json:"type,omitempty"` // "system" or "user"
	MessagesTotal         int64  `json:"messagesTotal,omitempty"`
	MessagesUnread        int64  `json:"messagesUnread,omitempty"`
	LabelListVisibility   string `json:"labelListVisibility,omitempty"`
	MessageListVisibility string `json:"messageListVisibility,omitempty"`
}

// AttachmentInfo represents an attachment's metadata.
type AttachmentInfo struct {
	MessageID    string `json:"messageId"`
	AttachmentID string `json:"attachmentId"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
}

// toMessageSummary converts an API message, extracting common headers.
func toMessageSummary(msg *gmail.Message) MessageSummary {
	summary := MessageSummary{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		LabelIDs: msg.LabelIds,
		Snippet:  msg.Snippet,
	}

	if msg.Payload != nil {
		summary.From = headerValue(msg.Payload.Headers, "From")
		summary.To = headerValue(msg.Payload.Headers, "To")
		summary.Subject = headerValue(msg.Payload.Headers, "Subject")
		summary.Date = headerValue(msg.Payload.Headers, "Date")
	}
	if summary.Date == "" && msg.InternalDate > 0 {
		summary.Date = time.UnixMilli(msg.InternalDate).UTC().Format(time.RFC1123Z)
	}

	return summary
}

// headerValue returns the first header with the given name, matched
// case-insensitively.
func headerValue(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// messageBody extracts and decodes the first body part with the given MIME
// type.
func messageBody(msg *gmail.Message, mimeType string) string {
	if msg.Payload == nil {
		return ""
	}

	var encoded string
	walkParts(msg.Payload, func(part *gmail.MessagePart) {
		if encoded == "" && part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
			encoded = part.Body.Data
		}
	})
	if encoded == "" {
		return ""
	}

	return decodeBase64URL(encoded)
}

// walkParts visits a message part and all nested sub-parts.
func walkParts(part *gmail.MessagePart, fn func(*gmail.MessagePart)) {
	if part == nil {
		return
	}
	fn(part)
	for _, sub := range part.Parts {
		walkParts(sub, fn)
	}
}

// decodeBase64URL decodes Gmail body data, which uses RFC 4648 base64url,
// falling back to standard base64.
func decodeBase64URL(data string) string {
	if decoded, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	if decoded, err := base64.StdEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	return ""
}
