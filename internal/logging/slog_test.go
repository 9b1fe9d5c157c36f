package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestAttributeHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("test",
		Operation("resolve"),
		Service("drive"),
		Tool("drive_search_files"),
		Status(StatusSuccess),
	)

	out := buf.String()
	for _, want := range []string{"operation=resolve", "service=drive", "tool=drive_search_files", "status=success"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestErrNil(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("no error", Err(nil))
	if strings.Contains(buf.String(), "error=") {
		t.Errorf("nil error should be omitted from output: %s", buf.String())
	}

	buf.Reset()
	logger.Info("with error", Err(errors.New("boom")))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("error attribute missing: %s", buf.String())
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithService(WithTool(WithOperation(logger, "op"), "tool"), "svc").Info("msg")

	out := buf.String()
	for _, want := range []string{"operation=op", "tool=tool", "service=svc"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty", "", "<empty>"},
		{"short", "abc", "[token:3 chars]"},
		{"long", strings.Repeat("x", 128), "[token:128 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeToken(tt.token); got != tt.want {
				t.Errorf("SanitizeToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
