package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToolInvocationLifecycle(t *testing.T) {
	ti := NewToolInvocation("sheets_get_values").
		WithService(ServiceSheets, "get_values")

	assert.Equal(t, "sheets_get_values", ti.Tool)
	assert.False(t, ti.StartTime.IsZero())

	time.Sleep(time.Millisecond)
	ti.CompleteSuccess()

	assert.True(t, ti.Success)
	assert.Positive(t, ti.Duration)
	assert.Equal(t, StatusSuccess, ti.Status())
}

func TestToolInvocationCompleteWithError(t *testing.T) {
	ti := NewToolInvocation("gmail_send_message")
	ti.CompleteWithError(errors.New("quota exceeded"))

	assert.False(t, ti.Success)
	assert.Equal(t, "quota exceeded", ti.Error)
	assert.Equal(t, StatusError, ti.Status())
}

func TestAuditLoggerWritesRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	audit := NewAuditLogger(logger, AuditLoggingConfig{Enabled: true})
	ti := NewToolInvocation("calendar_list_events").
		WithService(ServiceCalendar, "list_events").
		CompleteSuccess()
	audit.LogToolInvocation(ti)

	out := buf.String()
	assert.Contains(t, out, "tool invocation")
	assert.Contains(t, out, "tool=calendar_list_events")
	assert.Contains(t, out, "service=calendar")
	assert.Contains(t, out, "success=true")
}

func TestAuditLoggerErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	audit := NewAuditLogger(logger, AuditLoggingConfig{Enabled: true})
	ti := NewToolInvocation("drive_delete_file").
		CompleteWithError(errors.New("not found"))
	audit.LogToolInvocation(ti)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error=\"not found\"")
}

func TestAuditLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	audit := NewAuditLogger(logger, AuditLoggingConfig{Enabled: false})
	audit.LogToolInvocation(NewToolInvocation("tool").CompleteSuccess())

	if strings.TrimSpace(buf.String()) != "" {
		t.Errorf("disabled audit logger should write nothing, got: %s", buf.String())
	}
}

func TestNilAuditLoggerIsSafe(t *testing.T) {
	var audit *AuditLogger
	audit.LogToolInvocation(NewToolInvocation("tool").CompleteSuccess())
}
