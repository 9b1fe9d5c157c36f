package docs_tools

import (
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
)

func TestRegisterDocsTools(t *testing.T) {
	s := mcpserver.NewMCPServer("test", "0.0.1")
	if err := RegisterDocsTools(s, &server.ServerContext{}); err != nil {
		t.Fatalf("RegisterDocsTools() error = %v", err)
	}
}
