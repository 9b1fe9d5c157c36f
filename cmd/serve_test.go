package cmd

import (
	"reflect"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
)

func TestParseCommaSeparatedList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "single value",
			input:    "gmail",
			expected: []string{"gmail"},
		},
		{
			name:     "multiple values",
			input:    "gmail,calendar",
			expected: []string{"gmail", "calendar"},
		},
		{
			name:     "values with spaces around comma",
			input:    "gmail, calendar",
			expected: []string{"gmail", "calendar"},
		},
		{
			name:     "trailing comma",
			input:    "gmail,calendar,",
			expected: []string{"gmail", "calendar"},
		},
		{
			name:     "only commas",
			input:    ",,,",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCommaSeparatedList(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseCommaSeparatedList(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DRIVE_FOLDER_ID", "folder-env")
	t.Setenv("WORKSPACE_SERVICES", "gmail,drive")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_ADDR", ":9191")

	opts := serveOptions{
		httpAddr:       ":8080",
		metricsEnabled: true,
		metricsAddr:    ":9090",
	}
	applyEnvOverrides(&opts)

	if opts.httpAddr != ":9999" {
		t.Errorf("httpAddr = %q, want :9999", opts.httpAddr)
	}
	if opts.driveFolderID != "folder-env" {
		t.Errorf("driveFolderID = %q", opts.driveFolderID)
	}
	if !reflect.DeepEqual(opts.services, []string{"gmail", "drive"}) {
		t.Errorf("services = %v", opts.services)
	}
	if opts.metricsEnabled {
		t.Error("expected metrics disabled via env")
	}
	if opts.metricsAddr != ":9191" {
		t.Errorf("metricsAddr = %q", opts.metricsAddr)
	}
}

func TestApplyEnvOverridesFlagsWin(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DRIVE_FOLDER_ID", "folder-env")
	t.Setenv("WORKSPACE_SERVICES", "gmail")

	opts := serveOptions{
		httpAddr:      ":7070",
		driveFolderID: "folder-flag",
		services:      []string{"calendar"},
	}
	applyEnvOverrides(&opts)

	if opts.httpAddr != ":7070" {
		t.Errorf("httpAddr = %q, want flag value", opts.httpAddr)
	}
	if opts.driveFolderID != "folder-flag" {
		t.Errorf("driveFolderID = %q, want flag value", opts.driveFolderID)
	}
	if !reflect.DeepEqual(opts.services, []string{"calendar"}) {
		t.Errorf("services = %v, want flag value", opts.services)
	}
}

func TestRegisterAllToolsSkipsDisabledFamilies(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1")

	// A zero server context has no enabled families, so registration is
	// a no-op.
	if err := registerAllTools(s, &server.ServerContext{}); err != nil {
		t.Fatalf("registerAllTools() error = %v", err)
	}
}
