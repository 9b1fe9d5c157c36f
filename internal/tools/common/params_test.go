package common

import (
	"reflect"
	"testing"
	"time"
)

func TestStringArg(t *testing.T) {
	args := map[string]interface{}{
		"name":  "inbox",
		"empty": "",
		"count": float64(3),
	}

	if val, err := StringArg(args, "name"); err != nil || val != "inbox" {
		t.Errorf("StringArg(name) = %q, %v", val, err)
	}
	if _, err := StringArg(args, "empty"); err == nil {
		t.Error("expected error for empty string")
	}
	if _, err := StringArg(args, "missing"); err == nil {
		t.Error("expected error for missing argument")
	}
	if _, err := StringArg(args, "count"); err == nil {
		t.Error("expected error for non-string argument")
	}
}

func TestOptionalStringArg(t *testing.T) {
	args := map[string]interface{}{"format": "markdown", "empty": ""}

	if got := OptionalStringArg(args, "format", "text"); got != "markdown" {
		t.Errorf("expected markdown, got %q", got)
	}
	if got := OptionalStringArg(args, "empty", "text"); got != "text" {
		t.Errorf("expected fallback for empty, got %q", got)
	}
	if got := OptionalStringArg(args, "missing", "text"); got != "text" {
		t.Errorf("expected fallback for missing, got %q", got)
	}
}

func TestBoolAndNumericArgs(t *testing.T) {
	args := map[string]interface{}{
		"reply_all":   true,
		"max_results": float64(25),
		"font_size":   float64(11.5),
	}

	if !BoolArg(args, "reply_all", false) {
		t.Error("expected true")
	}
	if BoolArg(args, "missing", false) {
		t.Error("expected fallback false")
	}
	if got := IntArg(args, "max_results", 10); got != 25 {
		t.Errorf("IntArg = %d, want 25", got)
	}
	if got := IntArg(args, "missing", 10); got != 10 {
		t.Errorf("IntArg fallback = %d, want 10", got)
	}
	if got := FloatArg(args, "font_size", 0); got != 11.5 {
		t.Errorf("FloatArg = %v, want 11.5", got)
	}
}

func TestTimeArg(t *testing.T) {
	args := map[string]interface{}{
		"start": "2026-03-01T09:00:00Z",
		"bad":   "yesterday",
	}

	got, err := TimeArg(args, "start")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TimeArg = %v, want %v", got, want)
	}

	if _, err := TimeArg(args, "bad"); err == nil {
		t.Error("expected error for malformed timestamp")
	}
	if _, err := TimeArg(args, "missing"); err == nil {
		t.Error("expected error for missing timestamp")
	}
}

func TestOptionalTimeArg(t *testing.T) {
	args := map[string]interface{}{
		"end": "2026-03-01T17:00:00+01:00",
		"bad": "not-a-time",
	}

	got, err := OptionalTimeArg(args, "end")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsZero() {
		t.Error("expected parsed time")
	}

	got, err = OptionalTimeArg(args, "missing")
	if err != nil || !got.IsZero() {
		t.Errorf("expected zero time for missing argument, got %v, %v", got, err)
	}

	if _, err := OptionalTimeArg(args, "bad"); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

func TestStringListArg(t *testing.T) {
	tests := []struct {
		name string
		val  interface{}
		want []string
	}{
		{"simple", "a@example.com,b@example.com", []string{"a@example.com", "b@example.com"}},
		{"whitespace", " a@example.com , b@example.com ", []string{"a@example.com", "b@example.com"}},
		{"trailing comma", "a@example.com,", []string{"a@example.com"}},
		{"empty", "", nil},
		{"non-string", float64(1), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]interface{}{"list": tt.val}
			got := StringListArg(args, "list")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringListArg = %v, want %v", got, tt.want)
			}
		})
	}
}
