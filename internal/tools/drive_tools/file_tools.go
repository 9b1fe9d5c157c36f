package drive_tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

func registerFileMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createFolderTool := mcp.NewTool("drive_create_folder",
		mcp.WithDescription("Create a folder in Drive"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Folder name"),
		),
		mcp.WithString("parentId",
			mcp.Description("Parent folder ID (default: Drive root)"),
		),
	)
	s.AddTool(createFolderTool, common.InstrumentedHandler("drive_create_folder", "drive", "create_folder", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			name, err := common.StringArg(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			folder, err := sc.DriveClient().CreateFolder(ctx, name, common.OptionalStringArg(args, "parentId", ""))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create folder: %v", err)), nil
			}
			return common.JSONResult(folder)
		}))

	uploadTool := mcp.NewTool("drive_upload_file",
		mcp.WithDescription("Upload a file to Drive. Content is plain text, or base64 when contentEncoding is 'base64'."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("File content"),
		),
		mcp.WithString("mimeType",
			mcp.Description("MIME type (default 'text/plain')"),
		),
		mcp.WithString("contentEncoding",
			mcp.Description("Set to 'base64' when content is base64-encoded binary data"),
		),
		mcp.WithString("parentId",
			mcp.Description("Parent folder ID (default: Drive root)"),
		),
	)
	s.AddTool(uploadTool, common.InstrumentedHandler("drive_upload_file", "drive", "upload", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			name, err := common.StringArg(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			content, err := common.StringArg(args, "content")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			var reader *strings.Reader
			if common.OptionalStringArg(args, "contentEncoding", "") == "base64" {
				decoded, err := base64.StdEncoding.DecodeString(content)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Invalid base64 content: %v", err)), nil
				}
				reader = strings.NewReader(string(decoded))
			} else {
				reader = strings.NewReader(content)
			}

			file, err := sc.DriveClient().UploadFile(ctx, name,
				common.OptionalStringArg(args, "mimeType", "text/plain"),
				reader,
				common.OptionalStringArg(args, "parentId", ""))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to upload file: %v", err)), nil
			}
			return common.JSONResult(file)
		}))

	moveTool := mcp.NewTool("drive_move_file",
		mcp.WithDescription("Move a file to a different folder"),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to move"),
		),
		mcp.WithString("newParentId",
			mcp.Required(),
			mcp.Description("Destination folder ID"),
		),
	)
	s.AddTool(moveTool, common.InstrumentedHandler("drive_move_file", "drive", "move", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			fileID, err := common.StringArg(args, "fileId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			newParentID, err := common.StringArg(args, "newParentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			file, err := sc.DriveClient().MoveFile(ctx, fileID, newParentID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to move file: %v", err)), nil
			}
			return common.JSONResult(file)
		}))

	renameTool := mcp.NewTool("drive_rename_file",
		mcp.WithDescription("Rename a file"),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to rename"),
		),
		mcp.WithString("newName",
			mcp.Required(),
			mcp.Description("New file name"),
		),
	)
	s.AddTool(renameTool, common.InstrumentedHandler("drive_rename_file", "drive", "rename", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			fileID, err := common.StringArg(args, "fileId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			newName, err := common.StringArg(args, "newName")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			file, err := sc.DriveClient().RenameFile(ctx, fileID, newName)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to rename file: %v", err)), nil
			}
			return common.JSONResult(file)
		}))

	deleteTool := mcp.NewTool("drive_delete_file",
		mcp.WithDescription("Permanently delete a file or folder"),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to delete"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedHandler("drive_delete_file", "drive", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			fileID, err := common.StringArg(args, "fileId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.DriveClient().DeleteFile(ctx, fileID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete file: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("File %s deleted", fileID)), nil
		}))

	shareTool := mcp.NewTool("drive_share_file",
		mcp.WithDescription("Share a file with a user"),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("The ID of the file to share"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address to grant access to"),
		),
		mcp.WithString("role",
			mcp.Description("Access role: 'reader', 'commenter', 'writer', 'owner' (default 'reader')"),
		),
		mcp.WithBoolean("sendNotification",
			mcp.Description("Send a notification email to the grantee (default true)"),
		),
	)
	s.AddTool(shareTool, common.InstrumentedHandler("drive_share_file", "drive", "share", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			fileID, err := common.StringArg(args, "fileId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			email, err := common.StringArg(args, "email")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			perm, err := sc.DriveClient().ShareFile(ctx, fileID, email,
				common.OptionalStringArg(args, "role", "reader"),
				common.BoolArg(args, "sendNotification", true))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to share file: %v", err)), nil
			}
			return common.JSONResult(perm)
		}))
}
