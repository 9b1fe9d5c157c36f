package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/workspacekit/workspace-mcp/internal/server"
	"github.com/workspacekit/workspace-mcp/internal/tools/common"
)

func registerLabelReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	listLabelsTool := mcp.NewTool("gmail_list_labels",
		mcp.WithDescription("List all labels in the mailbox"),
	)
	s.AddTool(listLabelsTool, common.InstrumentedHandler("gmail_list_labels", "gmail", "list_labels", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			labels, err := sc.GmailClient().ListLabels(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list labels: %v", err)), nil
			}
			return common.JSONResult(labels)
		}))
}

func registerLabelMutationTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	createLabelTool := mcp.NewTool("gmail_create_label",
		mcp.WithDescription("Create a user label"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Label name (use '/' for nesting, e.g. 'Work/Reports')"),
		),
		mcp.WithString("labelListVisibility",
			mcp.Description("'labelShow', 'labelShowIfUnread' or 'labelHide'"),
		),
		mcp.WithString("messageListVisibility",
			mcp.Description("'show' or 'hide'"),
		),
	)
	s.AddTool(createLabelTool, common.InstrumentedHandler("gmail_create_label", "gmail", "create_label", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			name, err := common.StringArg(args, "name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			label, err := sc.GmailClient().CreateLabel(ctx, name,
				common.OptionalStringArg(args, "labelListVisibility", ""),
				common.OptionalStringArg(args, "messageListVisibility", ""))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to create label: %v", err)), nil
			}
			return common.JSONResult(label)
		}))

	updateLabelTool := mcp.NewTool("gmail_update_label",
		mcp.WithDescription("Update a user label"),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The ID of the label to update"),
		),
		mcp.WithString("name",
			mcp.Description("New label name"),
		),
		mcp.WithString("labelListVisibility",
			mcp.Description("'labelShow', 'labelShowIfUnread' or 'labelHide'"),
		),
		mcp.WithString("messageListVisibility",
			mcp.Description("'show' or 'hide'"),
		),
	)
	s.AddTool(updateLabelTool, common.InstrumentedHandler("gmail_update_label", "gmail", "update_label", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			labelID, err := common.StringArg(args, "labelId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			label, err := sc.GmailClient().UpdateLabel(ctx, labelID,
				common.OptionalStringArg(args, "name", ""),
				common.OptionalStringArg(args, "labelListVisibility", ""),
				common.OptionalStringArg(args, "messageListVisibility", ""))
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to update label: %v", err)), nil
			}
			return common.JSONResult(label)
		}))

	deleteLabelTool := mcp.NewTool("gmail_delete_label",
		mcp.WithDescription("Delete a user label. Messages keep their other labels."),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The ID of the label to delete"),
		),
	)
	s.AddTool(deleteLabelTool, common.InstrumentedHandler("gmail_delete_label", "gmail", "delete_label", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			labelID, err := common.StringArg(args, "labelId")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			if err := sc.GmailClient().DeleteLabel(ctx, labelID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete label: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Label %s deleted", labelID)), nil
		}))

	batchModifyTool := mcp.NewTool("gmail_batch_modify",
		mcp.WithDescription("Add and/or remove labels on a batch of messages"),
		mcp.WithString("messageIds",
			mcp.Required(),
			mcp.Description("Comma-separated message IDs"),
		),
		mcp.WithString("addLabelIds",
			mcp.Description("Comma-separated label IDs to add"),
		),
		mcp.WithString("removeLabelIds",
			mcp.Description("Comma-separated label IDs to remove"),
		),
	)
	s.AddTool(batchModifyTool, common.InstrumentedHandler("gmail_batch_modify", "gmail", "batch_modify", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messageIDs := common.StringListArg(args, "messageIds")
			if len(messageIDs) == 0 {
				return mcp.NewToolResultError("messageIds parameter is required"), nil
			}

			addLabelIDs := common.StringListArg(args, "addLabelIds")
			removeLabelIDs := common.StringListArg(args, "removeLabelIds")
			if len(addLabelIDs) == 0 && len(removeLabelIDs) == 0 {
				return mcp.NewToolResultError("at least one of addLabelIds or removeLabelIds is required"), nil
			}

			if err := sc.GmailClient().BatchModify(ctx, messageIDs, addLabelIDs, removeLabelIDs); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to modify messages: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Modified %d messages", len(messageIDs))), nil
		}))

	batchDeleteTool := mcp.NewTool("gmail_batch_delete",
		mcp.WithDescription("Permanently delete a batch of messages. This bypasses the trash."),
		mcp.WithString("messageIds",
			mcp.Required(),
			mcp.Description("Comma-separated message IDs"),
		),
	)
	s.AddTool(batchDeleteTool, common.InstrumentedHandler("gmail_batch_delete", "gmail", "batch_delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			messageIDs := common.StringListArg(args, "messageIds")
			if len(messageIDs) == 0 {
				return mcp.NewToolResultError("messageIds parameter is required"), nil
			}

			if err := sc.GmailClient().BatchDelete(ctx, messageIDs); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to delete messages: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Deleted %d messages", len(messageIDs))), nil
		}))
}
