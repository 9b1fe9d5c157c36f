package sheets_tools

import (
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
)

func TestRegisterSheetsTools(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1")
	if err := RegisterSheetsTools(s, &server.ServerContext{}); err != nil {
		t.Fatalf("RegisterSheetsTools() error = %v", err)
	}
}
