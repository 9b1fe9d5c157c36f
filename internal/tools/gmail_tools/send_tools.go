package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/gmail"
	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

func registerSendTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	sendTool := mcp.NewTool("gmail_send_message",
		mcp.WithDescription("Send an email message"),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Comma-separated recipient email addresses"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Message subject"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Message body"),
		),
		mcp.WithString("cc",
			mcp.Description("Comma-separated Cc addresses"),
		),
		mcp.WithString("bcc",
			mcp.Description("Comma-separated Bcc addresses"),
		),
		mcp.WithBoolean("html",
			mcp.Description("Send the body as text/html instead of text/plain"),
		),
	)
	s.AddTool(sendTool, common.InstrumentedHandler("gmail_send_message", "gmail", "send", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			to := common.StringListArg(args, "to")
			if len(to) == 0 {
				return mcp.NewToolResultError("to parameter is required"), nil
			}
			subject, err := common.StringArg(args, "subject")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			body, err := common.StringArg(args, "body")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := sc.GmailClient().SendMessage(ctx, gmail.OutgoingMessage{
				To:      to,
				Cc:      common.StringListArg(args, "cc"),
				Bcc:     common.StringListArg(args, "bcc"),
				Subject: subject,
				Body:    body,
				HTML:    common.BoolArg(args, "html", false),
			})
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to send message: %v", err)), nil
			}
			return common.JSONResult(msg)
		}))

	replyTool := mcp.NewTool("gmail_reply",
		mcp.WithDescription("Reply to a message, staying in its thread"),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to reply to"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Reply body"),
		),
		mcp.WithBoolean("replyAll",
			mcp.Description("Reply to all original recipients (default false)"),
		),
	)
	s.AddTool(replyTool, common.InstrumentedHandler("gmail_reply", "gmail", "reply", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messageID, err := common.StringArg(args, "messageId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			body, err := common.StringArg(args, "body")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := sc.GmailClient().Reply(ctx, messageID, body, common.BoolArg(args, "replyAll", false))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to reply: %v", err)), nil
			}
			return common.JSONResult(msg)
		}))

	forwardTool := mcp.NewTool("gmail_forward",
		mcp.WithDescription("Forward a message to other recipients with an optional note"),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to forward"),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Comma-separated recipient email addresses"),
		),
		mcp.WithString("note",
			mcp.Description("Text placed above the forwarded message"),
		),
	)
	s.AddTool(forwardTool, common.InstrumentedHandler("gmail_forward", "gmail", "forward", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messageID, err := common.StringArg(args, "messageId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			to := common.StringListArg(args, "to")
			if len(to) == 0 {
				return mcp.NewToolResultError("to parameter is required"), nil
			}

			msg, err := sc.GmailClient().Forward(ctx, messageID, to, common.OptionalStringArg(args, "note", ""))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to forward message: %v", err)), nil
			}
			return common.JSONResult(msg)
		}))
}
