package drive_tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

// fileContent is the result shape of drive_get_file_content. Binary
// payloads are base64-encoded and flagged via Encoding.
type fileContent struct {
	MimeType string `json:"mimeType"`
	Encoding string `json:"encoding,omitempty"`
	Content  string `json:"content"`
}

// RegisterDriveTools registers all Drive tools with the MCP server.
// Mutating tools are skipped in read-only mode.
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchTool := mcp.NewTool("drive_search_files",
		mcp.WithDescription("Search Drive files with a Drive query (e.g. \"name contains 'report'\")"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Drive search query"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of files to return (default 25)"),
		),
	)
	s.AddTool(searchTool, common.InstrumentedHandler("drive_search_files", "drive", "search", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			query, err := common.StringArg(args, "query")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			files, err := sc.DriveClient().SearchFiles(ctx, query, common.IntArg(args, "maxResults", 25))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to search files: %v", err)), nil
			}
			return common.JSONResult(files)
		}))

	contentTool := mcp.NewTool("drive_get_file_content",
		mcp.WithDescription("Download a file's content. Google-native formats are exported (Docs to text, Sheets to CSV); binary content is returned base64-encoded."),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to download"),
		),
	)
	s.AddTool(contentTool, common.InstrumentedHandler("drive_get_file_content", "drive", "get_content", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			fileID, err := common.StringArg(args, "fileId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			data, mimeType, err := sc.DriveClient().GetFileContent(ctx, fileID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get file content: %v", err)), nil
			}

			result := fileContent{MimeType: mimeType}
			if utf8.Valid(data) {
				result.Content = string(data)
			} else {
				result.Encoding = "base64"
				result.Content = base64.StdEncoding.EncodeToString(data)
			}
			return common.JSONResult(result)
		}))

	metadataTool := mcp.NewTool("drive_get_file_metadata",
		mcp.WithDescription("Get a file's metadata including owners and permissions"),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file"),
		),
	)
	s.AddTool(metadataTool, common.InstrumentedHandler("drive_get_file_metadata", "drive", "get_metadata", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			fileID, err := common.StringArg(args, "fileId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.DriveClient().GetFileMetadata(ctx, fileID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get file metadata: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	if !sc.ReadOnly() {
		registerFileMutationTools(s, sc)
	}

	return nil
}
