package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

// RegisterGmailTools registers all Gmail tools with the MCP server.
// Mutating tools are skipped in read-only mode.
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerMessageReadTools(s, sc)
	registerAttachmentTools(s, sc)
	registerLabelReadTools(s, sc)

	if !sc.ReadOnly() {
		registerSendTools(s, sc)
		registerLabelMutationTools(s, sc)
	}

	return nil
}

func registerMessageReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	getMessageTool := mcp.NewTool("gmail_get_message",
		mcp.WithDescription("Get a full Gmail message including its decoded body"),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message"),
		),
	)
	s.AddTool(getMessageTool, common.InstrumentedHandler("gmail_get_message", "gmail", "get_message", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messageID, err := common.StringArg(args, "messageId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := sc.GmailClient().GetMessage(ctx, messageID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get message: %v", err)), nil
			}
			return common.JSONResult(msg)
		}))

	listMessagesTool := mcp.NewTool("gmail_list_messages",
		mcp.WithDescription("List Gmail messages matching a search query (e.g. 'from:alice is:unread')"),
		mcp.WithString("query",
			mcp.Description("Gmail search query"),
		),
		mcp.WithString("labelIds",
			mcp.Description("Comma-separated label IDs to filter by"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of messages to return (default 25)"),
		),
	)
	s.AddTool(listMessagesTool, common.InstrumentedHandler("gmail_list_messages", "gmail", "list_messages", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messages, err := sc.GmailClient().ListMessages(ctx,
				common.OptionalStringArg(args, "query", ""),
				common.StringListArg(args, "labelIds"),
				common.IntArg(args, "maxResults", 25))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list messages: %v", err)), nil
			}
			return common.JSONResult(messages)
		}))

	getThreadTool := mcp.NewTool("gmail_get_thread",
		mcp.WithDescription("Get a Gmail conversation thread with all its messages"),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The ID of the thread"),
		),
	)
	s.AddTool(getThreadTool, common.InstrumentedHandler("gmail_get_thread", "gmail", "get_thread", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			threadID, err := common.StringArg(args, "threadId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			thread, err := sc.GmailClient().GetThread(ctx, threadID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get thread: %v", err)), nil
			}
			return common.JSONResult(thread)
		}))

	listThreadsTool := mcp.NewTool("gmail_list_threads",
		mcp.WithDescription("List Gmail threads matching a search query"),
		mcp.WithString("query",
			mcp.Description("Gmail search query"),
		),
		mcp.WithString("labelIds",
			mcp.Description("Comma-separated label IDs to filter by"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of threads to return (default 25)"),
		),
	)
	s.AddTool(listThreadsTool, common.InstrumentedHandler("gmail_list_threads", "gmail", "list_threads", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			threads, err := sc.GmailClient().ListThreads(ctx,
				common.OptionalStringArg(args, "query", ""),
				common.StringListArg(args, "labelIds"),
				common.IntArg(args, "maxResults", 25))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list threads: %v", err)), nil
			}
			return common.JSONResult(threads)
		}))
}
