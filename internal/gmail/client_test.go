package gmail

import (
	"encoding/base64"
	"testing"

	gmail "google.golang.org/api/gmail/v1"
)

func TestToMessageSummary(t *testing.T) {
	msg := &gmail.Message{
		Id:       "msg-1",
		ThreadId: "thread-1",
		LabelIds: []string{"INBOX", "UNREAD"},
		Snippet:  "Hello there",
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "sender@example.com"},
				{Name: "To", Value: "me@example.com"},
				{Name: "Subject", Value: "Greetings"},
				{Name: "Date", Value: "Mon, 24 Aug 2026 09:00:00 +0000"},
			},
		},
	}

	summary := toMessageSummary(msg)

	if summary.ID != "msg-1" || summary.ThreadID != "thread-1" {
		t.Errorf("unexpected IDs: %+v", summary)
	}
	if summary.From != "sender@example.com" {
		t.Errorf("unexpected From: %s", summary.From)
	}
	if summary.Subject != "Greetings" {
		t.Errorf("unexpected Subject: %s", summary.Subject)
	}
	if len(summary.LabelIDs) != 2 {
		t.Errorf("unexpected labels: %v", summary.LabelIDs)
	}
}

func TestToMessageSummaryFallsBackToInternalDate(t *testing.T) {
	msg := &gmail.Message{
		Id:           "msg-2",
		InternalDate: 1756457400000,
	}

	summary := toMessageSummary(msg)

	if summary.Date == "" {
		t.Error("expected date derived from internal date")
	}
}

func TestHeaderValueCaseInsensitive(t *testing.T) {
	headers := []*gmail.MessagePartHeader{
		{Name: "subject", Value: "lowercase header"},
	}

	if got := headerValue(headers, "Subject"); got != "lowercase header" {
		t.Errorf("expected case-insensitive match, got %q", got)
	}
	if got := headerValue(headers, "From"); got != "" {
		t.Errorf("expected empty value for missing header, got %q", got)
	}
}

func TestMessageBody(t *testing.T) {
	plain := base64.URLEncoding.EncodeToString([]byte("plain body"))
	html := base64.URLEncoding.EncodeToString([]byte("<p>html body</p>"))

	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "multipart/alternative",
			Parts: []*gmail.MessagePart{
				{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: plain}},
				{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: html}},
			},
		},
	}

	if got := messageBody(msg, "text/plain"); got != "plain body" {
		t.Errorf("unexpected plain body: %q", got)
	}
	if got := messageBody(msg, "text/html"); got != "<p>html body</p>" {
		t.Errorf("unexpected html body: %q", got)
	}
	if got := messageBody(msg, "text/csv"); got != "" {
		t.Errorf("expected empty body for absent mime type, got %q", got)
	}
}

func TestMessageBodyNestedParts(t *testing.T) {
	inner := base64.URLEncoding.EncodeToString([]byte("nested"))

	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "multipart/mixed",
			Parts: []*gmail.MessagePart{
				{
					MimeType: "multipart/alternative",
					Parts: []*gmail.MessagePart{
						{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: inner}},
					},
				},
			},
		},
	}

	if got := messageBody(msg, "text/plain"); got != "nested" {
		t.Errorf("expected nested part found, got %q", got)
	}
}

func TestDecodeBase64URLFallback(t *testing.T) {
	// Standard base64 of bytes that require "+" or "/" is invalid
	// base64url; the decoder should still handle it.
	std := base64.StdEncoding.EncodeToString([]byte{0xfb, 0xff, 0x00})

	if got := decodeBase64URL(std); got != string([]byte{0xfb, 0xff, 0x00}) {
		t.Errorf("expected standard base64 fallback, got %q", got)
	}
	if got := decodeBase64URL("!!!invalid!!!"); got != "" {
		t.Errorf("expected empty string for invalid data, got %q", got)
	}
}

func TestToLabelInfo(t *testing.T) {
	label := &gmail.Label{
		Id:             "Label_1",
		Name:           "Receipts",
		Type:           "user",
		MessagesTotal:  42,
		MessagesUnread: 7,
	}

	info := toLabelInfo(label)

	if info.ID != "Label_1" || info.Name != "Receipts" {
		t.Errorf("unexpected label info: %+v", info)
	}
	if info.MessagesTotal != 42 || info.MessagesUnread != 7 {
		t.Errorf("unexpected counters: %+v", info)
	}
}
