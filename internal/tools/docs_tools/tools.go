package docs_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/docs"
	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

// RegisterDocsTools registers all Docs tools with the MCP server.
// Mutating tools are skipped in read-only mode.
func RegisterDocsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	getTool := mcp.NewTool("docs_get",
		mcp.WithDescription("Get metadata of a Google Doc"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
	)
	s.AddTool(getTool, common.InstrumentedHandler("docs_get", "docs", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.DocsClient().GetDocument(ctx, documentID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get document: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	listTool := mcp.NewTool("docs_list",
		mcp.WithDescription("List Google Docs, optionally filtered by name"),
		mcp.WithString("query",
			mcp.Description("Name filter (substring match)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of documents to return (default 25)"),
		),
	)
	s.AddTool(listTool, common.InstrumentedHandler("docs_list", "docs", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			entries, err := sc.DocsClient().ListDocuments(ctx,
				common.OptionalStringArg(args, "query", ""),
				common.IntArg(args, "maxResults", 25))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list documents: %v", err)), nil
			}
			return common.JSONResult(entries)
		}))

	contentTool := mcp.NewTool("docs_get_content",
		mcp.WithDescription("Get the content of a Google Doc as plain text or Markdown"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'text' or 'markdown' (default 'markdown')"),
		),
	)
	s.AddTool(contentTool, common.InstrumentedHandler("docs_get_content", "docs", "get_content", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			content, err := sc.DocsClient().GetContent(ctx, documentID,
				common.OptionalStringArg(args, "format", "markdown"))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get document content: %v", err)), nil
			}
			return mcp.NewToolResultText(content), nil
		}))

	if !sc.ReadOnly() {
		registerDocsMutationTools(s, sc)
	}

	return nil
}

func registerDocsMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createTool := mcp.NewTool("docs_create",
		mcp.WithDescription("Create a new Google Doc"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Document title"),
		),
	)
	s.AddTool(createTool, common.InstrumentedHandler("docs_create", "docs", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			title, err := common.StringArg(args, "title")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := sc.DocsClient().CreateDocument(ctx, title)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create document: %v", err)), nil
			}
			return common.JSONResult(info)
		}))

	insertTool := mcp.NewTool("docs_insert_text",
		mcp.WithDescription("Insert text at a character index in the document body"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to insert"),
		),
		mcp.WithNumber("index",
			mcp.Description("Character index to insert at (default 1, the start of the body)"),
		),
	)
	s.AddTool(insertTool, common.InstrumentedHandler("docs_insert_text", "docs", "insert_text", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := common.StringArg(args, "text")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.DocsClient().InsertText(ctx, documentID, text, common.IntArg(args, "index", 1)); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to insert text: %v", err)), nil
			}
			return mcp.NewToolResultText("Text inserted"), nil
		}))

	appendTool := mcp.NewTool("docs_append_paragraph",
		mcp.WithDescription("Append a paragraph to the end of the document"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Paragraph text to append"),
		),
	)
	s.AddTool(appendTool, common.InstrumentedHandler("docs_append_paragraph", "docs", "append_paragraph", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			text, err := common.StringArg(args, "text")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.DocsClient().AppendParagraph(ctx, documentID, text); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to append paragraph: %v", err)), nil
			}
			return mcp.NewToolResultText("Paragraph appended"), nil
		}))

	replaceTool := mcp.NewTool("docs_replace_text",
		mcp.WithDescription("Replace all occurrences of a string in the document"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("find",
			mcp.Required(),
			mcp.Description("Text to find"),
		),
		mcp.WithString("replace",
			mcp.Required(),
			mcp.Description("Replacement text"),
		),
		mcp.WithBoolean("matchCase",
			mcp.Description("Match case when searching (default false)"),
		),
	)
	s.AddTool(replaceTool, common.InstrumentedHandler("docs_replace_text", "docs", "replace_text", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			find, err := common.StringArg(args, "find")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			replace, ok := args["replace"].(string)
			if !ok {
				return mcp.NewToolResultError("replace parameter is required"), nil
			}

			occurrences, err := sc.DocsClient().ReplaceText(ctx, documentID, find, replace,
				common.BoolArg(args, "matchCase", false))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to replace text: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Replaced %d occurrences", occurrences)), nil
		}))

	formatTool := mcp.NewTool("docs_format_text",
		mcp.WithDescription("Apply character formatting to a range of the document body"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithNumber("startIndex",
			mcp.Required(),
			mcp.Description("Start of the range (inclusive)"),
		),
		mcp.WithNumber("endIndex",
			mcp.Required(),
			mcp.Description("End of the range (exclusive)"),
		),
		mcp.WithBoolean("bold",
			mcp.Description("Set or clear bold"),
		),
		mcp.WithBoolean("italic",
			mcp.Description("Set or clear italic"),
		),
		mcp.WithBoolean("underline",
			mcp.Description("Set or clear underline"),
		),
		mcp.WithNumber("fontSize",
			mcp.Description("Font size in points"),
		),
	)
	s.AddTool(formatTool, common.InstrumentedHandler("docs_format_text", "docs", "format_text", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			start := common.IntArg(args, "startIndex", -1)
			end := common.IntArg(args, "endIndex", -1)
			if start < 0 || end < 0 {
				return mcp.NewToolResultError("startIndex and endIndex parameters are required"), nil
			}
			if end <= start {
				return mcp.NewToolResultError("endIndex must be greater than startIndex"), nil
			}

			style := docs.TextStyleInput{
				FontSize: common.FloatArg(args, "fontSize", 0),
			}
			if v, ok := args["bold"].(bool); ok {
				style.Bold = &v
			}
			if v, ok := args["italic"].(bool); ok {
				style.Italic = &v
			}
			if v, ok := args["underline"].(bool); ok {
				style.Underline = &v
			}

			if err := sc.DocsClient().FormatText(ctx, documentID, start, end, style); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to format text: %v", err)), nil
			}
			return mcp.NewToolResultText("Formatting applied"), nil
		}))

	batchTool := mcp.NewTool("docs_batch_update",
		mcp.WithDescription("Apply raw Docs API batchUpdate requests from a JSON array"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document"),
		),
		mcp.WithString("requests",
			mcp.Required(),
			mcp.Description("JSON array of Docs API request objects"),
		),
	)
	s.AddTool(batchTool, common.InstrumentedHandler("docs_batch_update", "docs", "batch_update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			requestsJSON, err := common.StringArg(args, "requests")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			applied, err := sc.DocsClient().BatchUpdate(ctx, documentID, requestsJSON)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to apply batch update: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Applied %d requests", applied)), nil
		}))

	shareTool := mcp.NewTool("docs_share",
		mcp.WithDescription("Share a document with a user"),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the document to share"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address to grant access to"),
		),
		mcp.WithString("role",
			mcp.Description("Access role: 'reader', 'commenter', 'writer' (default 'reader')"),
		),
		mcp.WithBoolean("sendNotification",
			mcp.Description("Send a notification email to the grantee (default true)"),
		),
	)
	s.AddTool(shareTool, common.InstrumentedHandler("docs_share", "docs", "share", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			documentID, err := common.StringArg(args, "documentId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			email, err := common.StringArg(args, "email")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.DocsClient().ShareDocument(ctx, documentID, email,
				common.OptionalStringArg(args, "role", "reader"),
				common.BoolArg(args, "sendNotification", true)); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to share document: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Document shared with %s", email)), nil
		}))
}
