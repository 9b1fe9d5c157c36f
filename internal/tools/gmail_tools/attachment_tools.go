package gmail_tools

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

func registerAttachmentTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	listTool := mcp.NewTool("gmail_list_attachments",
		mcp.WithDescription("List the attachments of a message"),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message"),
		),
	)
	s.AddTool(listTool, common.InstrumentedHandler("gmail_list_attachments", "gmail", "list_attachments", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messageID, err := common.StringArg(args, "messageId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			attachments, err := sc.GmailClient().ListAttachments(ctx, messageID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list attachments: %v", err)), nil
			}
			return common.JSONResult(attachments)
		}))

	getTool := mcp.NewTool("gmail_get_attachment",
		mcp.WithDescription("Download an attachment. The content is returned base64-encoded."),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message"),
		),
		mcp.WithString("attachmentId",
			mcp.Required(),
			mcp.Description("The ID of the attachment (from gmail_list_attachments)"),
		),
	)
	s.AddTool(getTool, common.InstrumentedHandler("gmail_get_attachment", "gmail", "get_attachment", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messageID, err := common.StringArg(args, "messageId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			attachmentID, err := common.StringArg(args, "attachmentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			data, err := sc.GmailClient().GetAttachment(ctx, messageID, attachmentID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get attachment: %v", err)), nil
			}
			return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(data)), nil
		}))
}
