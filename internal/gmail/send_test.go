package gmail

import (
	"strings"
	"testing"
)

func TestComposeRFC2822(t *testing.T) {
	out := OutgoingMessage{
		To:      []string{"a@example.com", "b@example.com"},
		Cc:      []string{"c@example.com"},
		Subject: "Status update",
		Body:    "All good.",
	}

	raw := composeRFC2822(out, nil)

	if !strings.Contains(raw, "To: a@example.com, b@example.com\r\n") {
		t.Errorf("missing To header: %q", raw)
	}
	if !strings.Contains(raw, "Cc: c@example.com\r\n") {
		t.Errorf("missing Cc header: %q", raw)
	}
	if !strings.Contains(raw, "Subject: Status update\r\n") {
		t.Errorf("missing Subject header: %q", raw)
	}
	if !strings.Contains(raw, "Content-Type: text/plain") {
		t.Errorf("expected plain text content type: %q", raw)
	}
	if !strings.HasSuffix(raw, "\r\n\r\nAll good.") {
		t.Errorf("expected blank line before body: %q", raw)
	}
}

func TestComposeRFC2822HTML(t *testing.T) {
	raw := composeRFC2822(OutgoingMessage{
		To:      []string{"a@example.com"},
		Subject: "x",
		Body:    "<b>hi</b>",
		HTML:    true,
	}, nil)

	if !strings.Contains(raw, "Content-Type: text/html") {
		t.Errorf("expected html content type: %q", raw)
	}
}

func TestComposeRFC2822ThreadingHeaders(t *testing.T) {
	raw := composeRFC2822(OutgoingMessage{
		To:      []string{"a@example.com"},
		Subject: "Re: x",
		Body:    "reply",
	}, map[string]string{
		"In-Reply-To": "<abc@mail.example.com>",
	})

	if !strings.Contains(raw, "In-Reply-To: <abc@mail.example.com>\r\n") {
		t.Errorf("expected threading header: %q", raw)
	}
}

func TestReplySubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "Re: Hello"},
		{"Re: Hello", "Re: Hello"},
		{"re: hello", "re: hello"},
		{"", "Re: "},
	}

	for _, tt := range tests {
		if got := replySubject(tt.in); got != tt.want {
			t.Errorf("replySubject(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestForwardSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "Fwd: Hello"},
		{"Fwd: Hello", "Fwd: Hello"},
		{"FW: Hello", "FW: Hello"},
	}

	for _, tt := range tests {
		if got := forwardSubject(tt.in); got != tt.want {
			t.Errorf("forwardSubject(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitAddressList(t *testing.T) {
	got := splitAddressList("a@example.com, Bob <b@example.com> ,, c@example.com")

	want := []string{"a@example.com", "Bob <b@example.com>", "c@example.com"}
	if len(got) != len(want) {
		t.Fatalf("expected %d addresses, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("address %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
