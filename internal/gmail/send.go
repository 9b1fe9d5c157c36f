package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// OutgoingMessage describes a message to send.
type OutgoingMessage struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string

	// HTML marks the body as text/html instead of text/plain.
	HTML bool
}

// SendMessage composes and sends a new message. Returns the sent message's
// ID and thread ID.
func (c *Client) SendMessage(ctx context.Context, out OutgoingMessage) (*MessageSummary, error) {
	if len(out.To) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}

	raw := composeRFC2822(out, nil)
	sent, err := c.svc.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &MessageSummary{ID: sent.Id, ThreadID: sent.ThreadId}, nil
}

// Reply sends a reply within the thread of an existing message. With
// replyAll, all original recipients are kept on the reply.
func (c *Client) Reply(ctx context.Context, messageID, body string, replyAll bool) (*MessageSummary, error) {
	original, err := c.svc.Messages.Get("me", messageID).Format("metadata").
		MetadataHeaders("From", "To", "Cc", "Subject", "Message-ID", "References").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get original message: %w", err)
	}

	headers := original.Payload.Headers
	out := OutgoingMessage{
		To:      []string{headerValue(headers, "From")},
		Subject: replySubject(headerValue(headers, "Subject")),
		Body:    body,
	}
	if replyAll {
		if to := headerValue(headers, "To"); to != "" {
			out.Cc = append(out.Cc, splitAddressList(to)...)
		}
		if cc := headerValue(headers, "Cc"); cc != "" {
			out.Cc = append(out.Cc, splitAddressList(cc)...)
		}
	}

	threading := map[string]string{}
	if msgID := headerValue(headers, "Message-ID"); msgID != "" {
		threading["In-Reply-To"] = msgID
		references := headerValue(headers, "References")
		if references != "" {
			threading["References"] = references + " " + msgID
		} else {
			threading["References"] = msgID
		}
	}

	raw := composeRFC2822(out, threading)
	sent, err := c.svc.Messages.Send("me", &gmail.Message{
		Raw:      base64.URLEncoding.EncodeToString([]byte(raw)),
		ThreadId: original.ThreadId,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to send reply: %w", err)
	}

	return &MessageSummary{ID: sent.Id, ThreadID: sent.ThreadId}, nil
}

// Forward sends an existing message to new recipients, prepending an
// optional note above the quoted original.
func (c *Client) Forward(ctx context.Context, messageID string, to []string, note string) (*MessageSummary, error) {
	if len(to) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}

	original, err := c.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	if note != "" {
		body.WriteString(note)
		body.WriteString("\n\n")
	}
	body.WriteString("---------- Forwarded message ----------\n")
	fmt.Fprintf(&body, "From: %s\n", original.From)
	fmt.Fprintf(&body, "Date: %s\n", original.Date)
	fmt.Fprintf(&body, "Subject: %s\n", original.Subject)
	fmt.Fprintf(&body, "To: %s\n\n", original.To)
	body.WriteString(original.Body)

	out := OutgoingMessage{
		To:      to,
		Subject: forwardSubject(original.Subject),
		Body:    body.String(),
	}

	raw := composeRFC2822(out, nil)
	sent, err := c.svc.Messages.Send("me", &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to forward message: %w", err)
	}

	return &MessageSummary{ID: sent.Id, ThreadID: sent.ThreadId}, nil
}

// composeRFC2822 builds a raw RFC 2822 message. extraHeaders carries
// threading headers like In-Reply-To.
func composeRFC2822(out OutgoingMessage, extraHeaders map[string]string) string {
	var msg strings.Builder

	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(out.To, ", "))
	if len(out.Cc) > 0 {
		fmt.Fprintf(&msg, "Cc: %s\r\n", strings.Join(out.Cc, ", "))
	}
	if len(out.Bcc) > 0 {
		fmt.Fprintf(&msg, "Bcc: %s\r\n", strings.Join(out.Bcc, ", "))
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", out.Subject)
	for name, value := range extraHeaders {
		fmt.Fprintf(&msg, "%s: %s\r\n", name, value)
	}

	contentType := "text/plain"
	if out.HTML {
		contentType = "text/html"
	}
	fmt.Fprintf(&msg, "Content-Type: %s; charset=\"UTF-8\"\r\n", contentType)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(out.Body)

	return msg.String()
}

// replySubject prefixes "Re:" unless already present.
func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

// forwardSubject prefixes "Fwd:" unless already present.
func forwardSubject(subject string) string {
	lower := strings.ToLower(subject)
	if strings.HasPrefix(lower, "fwd:") || strings.HasPrefix(lower, "fw:") {
		return subject
	}
	return "Fwd: " + subject
}

// splitAddressList splits a comma-separated address header into trimmed
// entries.
func splitAddressList(list string) []string {
	var out []string
	for _, addr := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
